package commands

import (
	"time"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// MenuItemResponse is the wire representation of a menu item.
// Command handlers return it to HTTP callers and publish it as the
// payload of menu events.
type MenuItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// NewMenuItemResponse maps a menu item aggregate to its wire representation.
func NewMenuItemResponse(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID().String(),
		Name:     item.Name(),
		Price:    item.Price(),
		ImageURL: item.ImageURL(),
	}
}

// MenuItemDeletedResponse is the payload of the menu_deleted event.
// Only the identifier survives the deletion.
type MenuItemDeletedResponse struct {
	ID string `json:"id"`
}

// OrderLineItemResponse is the wire representation of a single order line.
// Menu fields are the snapshot captured when the line was created, not the
// current catalog values.
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
// Command handlers return it to HTTP callers and publish it as the payload
// of order events.
type OrderResponse struct {
	ID          string                  `json:"id"`
	SeatNumber  string                  `json:"seat_number"`
	Status      string                  `json:"status"`
	IsPaid      bool                    `json:"is_paid"`
	TotalAmount float64                 `json:"total_amount"`
	CreatedAt   time.Time               `json:"created_at"`
	Items       []OrderLineItemResponse `json:"items"`
}

// NewOrderResponse maps an order aggregate to its wire representation.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	lines := make([]OrderLineItemResponse, 0, len(items))
	for _, li := range items {
		lines = append(lines, OrderLineItemResponse{
			ID:           li.ID().String(),
			OrderID:      o.ID().String(),
			MenuID:       li.MenuItemID().String(),
			MenuName:     li.MenuName(),
			MenuPrice:    li.MenuPrice(),
			MenuImageURL: li.MenuImageURL(),
			Quantity:     li.Quantity(),
			Subtotal:     li.Subtotal(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		SeatNumber:  o.SeatNumber(),
		Status:      o.Status().String(),
		IsPaid:      o.IsPaid(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		Items:       lines,
	}
}
