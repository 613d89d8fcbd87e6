package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

// CreateMenuItemCommandHandler handles the business logic for adding
// catalog items. Persists the new item and broadcasts a menu_created
// event after the transaction commits.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateMenuItemCommandHandler creates a handler for catalog item creation.
// Requires a MenuUoWFactory for transactional persistence and an
// EventPublisher for broadcasting the change.
func NewCreateMenuItemCommandHandler(
	uowFactory MenuUoWFactory, publisher ports.EventPublisher,
) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the catalog item creation command.
// Returns the created item so callers can render it without a second read.
func (h *CreateMenuItemCommandHandler) Handle(
	ctx context.Context, cmd CreateMenuItemCommand,
) (MenuItemResponse, error) {
	if err := cmd.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	item, err := menu.NewMenuItem(cmd.MenuItemID(), cmd.Name(), cmd.Price(), cmd.ImageURL())
	if err != nil {
		return MenuItemResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return MenuItemResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return MenuItemResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MenuItemResponse{}, err
	}

	resp := NewMenuItemResponse(item)
	_ = h.publisher.Publish(ctx, ports.EventMenuCreated, resp)

	return resp, nil
}
