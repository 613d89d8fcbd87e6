package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Resolves every requested catalog item, snapshots its name and price into
// the order lines, and persists the order in Pending status. Broadcasts an
// order_created event after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a cross-aggregate UoWFactory because catalog reads and the
// order insert share one transaction.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory, publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Returns an ObjectNotFoundError when a requested catalog item does not
// exist; in that case nothing is persisted.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
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

	menuRepo := uow.MenuRepository()
	lines := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		item, err := menuRepo.Get(ctx, requested.MenuItemID)
		if err != nil {
			return OrderResponse{}, err
		}

		line, err := order.NewLineItem(kernel.NewUUID(), item, requested.Quantity)
		if err != nil {
			return OrderResponse{}, err
		}

		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.SeatNumber(), lines)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	resp := NewOrderResponse(newOrder)
	_ = h.publisher.Publish(ctx, ports.EventOrderCreated, resp)

	return resp, nil
}
