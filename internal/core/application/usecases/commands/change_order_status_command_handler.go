package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles kitchen-side status moves.
// Locks the order row for the duration of the transaction so concurrent
// moves of the same order serialize instead of clobbering each other.
// Broadcasts an order_updated event after the transaction commits.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status moves.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status move command.
// Returns a StateIsInvalidError when the order is already paid or the
// target status is not reachable from the kitchen.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (OrderResponse, error) {
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

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	resp := NewOrderResponse(o)
	_ = h.publisher.Publish(ctx, ports.EventOrderUpdated, resp)

	return resp, nil
}
