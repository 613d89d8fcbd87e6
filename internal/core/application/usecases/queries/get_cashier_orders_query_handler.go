package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCashierOrdersQueryHandler reads the cashier register view from the
// database. Newest orders come first so the register shows what just
// happened at the top.
type GetCashierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCashierOrdersQueryHandler creates a handler for register queries.
// Requires a GORM database connection for query execution.
func NewGetCashierOrdersQueryHandler(db *gorm.DB) GetCashierOrdersQueryHandler {
	return GetCashierOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve register orders.
// Without a status filter only Ready and Paid orders are returned.
func (h GetCashierOrdersQueryHandler) Handle(
	ctx context.Context, query GetCashierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []string{order.Ready.String(), order.Paid.String()}
	if status := query.Status(); status != nil {
		statuses = []string{status.String()}
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select("id, seat_number, status, is_paid, total_amount, created_at").
		Where("status IN ?", statuses)

	if seatNumber := query.SeatNumber(); seatNumber != nil {
		tx = tx.Where("seat_number = ?", *seatNumber)
	}

	return scanOrderRows(ctx, h.db, tx.Order("created_at DESC"))
}
