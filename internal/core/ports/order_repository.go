package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored and loaded together with its line items.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items.
	// Order row and line item rows are written within the surrounding
	// transaction, so a failed insert leaves nothing behind.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// line items included.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but locks the order row for
	// the remainder of the surrounding transaction. Concurrent mutations of
	// the same order serialize on this lock; the later transaction observes
	// the committed state of the earlier one.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountLineItemsForMenuItem reports how many line items across all orders
	// reference the given menu item. Used to block catalog deletions that
	// would orphan order history.
	CountLineItemsForMenuItem(ctx context.Context, menuItemID kernel.UUID) (int64, error)
}
