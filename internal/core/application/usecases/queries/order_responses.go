// Package queries contains read operations against the store.
// Query handlers bypass the domain model and read projection rows directly,
// the read side of the CQRS split. Responses carry the wire field names.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLineItemResponse is the wire representation of a single order line.
// Menu fields are the snapshot captured when the line was created.
type OrderLineItemResponse struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	MenuID       string  `json:"menu_id"`
	MenuName     string  `json:"menu_name"`
	MenuPrice    float64 `json:"menu_price"`
	MenuImageURL string  `json:"menu_image_url"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// OrderResponse is the wire representation of an order with its line items.
type OrderResponse struct {
	ID          string                  `json:"id"`
	SeatNumber  string                  `json:"seat_number"`
	Status      string                  `json:"status"`
	IsPaid      bool                    `json:"is_paid"`
	TotalAmount float64                 `json:"total_amount"`
	CreatedAt   time.Time               `json:"created_at"`
	Items       []OrderLineItemResponse `json:"items"`
}

// scanOrderRows reads order rows from an executed query and attaches their
// line items with a single follow-up select. Shared by every order query.
func scanOrderRows(ctx context.Context, db *gorm.DB, result *gorm.DB) ([]OrderResponse, error) {
	sqlRows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	for sqlRows.Next() {
		var (
			id          uuid.UUID
			seatNumber  string
			status      string
			isPaid      bool
			totalAmount float64
			createdAt   time.Time
		)

		if err = sqlRows.Scan(&id, &seatNumber, &status, &isPaid, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:          id.String(),
			SeatNumber:  seatNumber,
			Status:      status,
			IsPaid:      isPaid,
			TotalAmount: totalAmount,
			CreatedAt:   createdAt,
			Items:       make([]OrderLineItemResponse, 0),
		})
		orderIDs = append(orderIDs, id)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	if len(orderIDs) == 0 {
		return orders, nil
	}

	lines, err := loadOrderLines(ctx, db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = append(orders[i].Items, lines[orders[i].ID]...)
	}

	return orders, nil
}

func loadOrderLines(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[string][]OrderLineItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			menu_name,
			menu_price,
			menu_image_url,
			quantity
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string][]OrderLineItemResponse)

	for rows.Next() {
		var (
			id           uuid.UUID
			orderID      uuid.UUID
			menuItemID   uuid.UUID
			menuName     string
			menuPrice    float64
			menuImageURL string
			quantity     int
		)

		err = rows.Scan(&id, &orderID, &menuItemID, &menuName, &menuPrice, &menuImageURL, &quantity)
		if err != nil {
			return nil, err
		}

		key := orderID.String()
		lines[key] = append(lines[key], OrderLineItemResponse{
			ID:           id.String(),
			OrderID:      key,
			MenuID:       menuItemID.String(),
			MenuName:     menuName,
			MenuPrice:    menuPrice,
			MenuImageURL: menuImageURL,
			Quantity:     quantity,
			Subtotal:     menuPrice * float64(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
