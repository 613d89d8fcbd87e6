package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the kitchen board from the database.
// Returns every order that has not been settled, line items included.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for kitchen board queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unsettled orders.
// Orders are sorted oldest first so the kitchen works in arrival order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context, query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			seat_number,
			status,
			is_paid,
			total_amount,
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY created_at
	`, order.Paid.String())

	return scanOrderRows(ctx, h.db, result)
}
