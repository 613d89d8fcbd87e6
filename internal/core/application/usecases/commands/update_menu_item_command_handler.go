package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// UpdateMenuItemCommandHandler handles partial updates of catalog items.
// Loads the item, applies the changed fields, persists the result and
// broadcasts a menu_updated event after the transaction commits.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog item updates.
func NewUpdateMenuItemCommandHandler(
	uowFactory MenuUoWFactory, publisher ports.EventPublisher,
) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the catalog item update command.
// Returns the item in its post-update state.
func (h *UpdateMenuItemCommandHandler) Handle(
	ctx context.Context, cmd UpdateMenuItemCommand,
) (MenuItemResponse, error) {
	if err := cmd.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MenuItemResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return MenuItemResponse{}, err
	}

	if name := cmd.Name(); name != nil {
		if err = item.Rename(*name); err != nil {
			return MenuItemResponse{}, err
		}
	}

	if price := cmd.Price(); price != nil {
		if err = item.ChangePrice(*price); err != nil {
			return MenuItemResponse{}, err
		}
	}

	if imageURL := cmd.ImageURL(); imageURL != nil {
		item.ChangeImageURL(*imageURL)
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return MenuItemResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MenuItemResponse{}, err
	}

	resp := NewMenuItemResponse(item)
	_ = h.publisher.Publish(ctx, ports.EventMenuUpdated, resp)

	return resp, nil
}
