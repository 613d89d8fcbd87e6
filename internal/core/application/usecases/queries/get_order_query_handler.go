package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns an ObjectNotFoundError when no order has the given identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
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
		WHERE id = ?
	`, query.OrderID().Bytes())

	orders, err := scanOrderRows(ctx, h.db, result)
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return orders[0], nil
}
