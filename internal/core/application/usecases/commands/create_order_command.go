package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired  = errors.New("order must contain at least one item")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// OrderItemRequest is a single requested line in an order: which catalog
// item and how many of it.
type OrderItemRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to open a new order for a seat.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "12A", []OrderItemRequest{
//	    {MenuItemID: margheritaID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	resp, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	seatNumber string
	items      []OrderItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// The seat number is free-form and may be empty (takeaway orders have no
// seat). Validates that the order ID is valid and every requested line names
// a valid catalog item with a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID, seatNumber string, items []OrderItemRequest,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard:      guard.NewConstructorGuard(),
		seatNumber: seatNumber,
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SeatNumber returns the seat the order is opened for.
func (c CreateOrderCommand) SeatNumber() string {
	return c.seatNumber
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}

		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
