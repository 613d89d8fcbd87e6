package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// PayOrderCommandHandler handles settling an order at the cashier.
// Locks the order row so a double-submitted payment serializes: the second
// attempt observes the paid state and is rejected. Broadcasts an order_paid
// event after the transaction commits.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewPayOrderCommandHandler creates a handler for order settlement.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the settlement command.
// Returns a StateIsInvalidError when the order is not Ready or is already
// paid.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = o.Pay(); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	resp := NewOrderResponse(o)
	_ = h.publisher.Publish(ctx, ports.EventOrderPaid, resp)

	return resp, nil
}
