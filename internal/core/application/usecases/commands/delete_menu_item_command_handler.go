package commands

import (
	"context"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler handles the removal of catalog items.
// An item referenced by any order line cannot be removed: deleting it
// would falsify the snapshots order history is built on. Broadcasts a
// menu_deleted event after the transaction commits.
type DeleteMenuItemCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteMenuItemCommandHandler creates a handler for catalog item removal.
// Requires a cross-aggregate UoWFactory because the reference check reads
// order lines while the delete touches the catalog.
func NewDeleteMenuItemCommandHandler(
	uowFactory UoWFactory, publisher ports.EventPublisher,
) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the catalog item removal command.
// Returns an ObjectInUseError when order lines still reference the item.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	references, err := uow.OrderRepository().CountLineItemsForMenuItem(ctx, item.ID())
	if err != nil {
		return err
	}

	if references > 0 {
		return errs.NewObjectInUseError("menuItemID", item.ID())
	}

	if err = menuRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.EventMenuDeleted, MenuItemDeletedResponse{ID: item.ID().String()})

	return nil
}
