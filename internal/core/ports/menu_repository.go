package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu item aggregates.
type MenuRepository interface {
	// Add persists a new menu item to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Delete removes a menu item by its unique identifier.
	// Callers are responsible for checking that no line item still references
	// the item; the store additionally enforces this with a foreign key.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
