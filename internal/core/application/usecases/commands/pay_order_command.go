package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a cashier settling an order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to settle an order.
func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := payCommand.setOrderID(orderID); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayOrderCommandIsNotConstructed if validation fails.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to settle.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
