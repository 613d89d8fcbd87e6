package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and access to repositories bound to the
// active transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// MenuRepository returns a MenuRepository instance bound to the current
	// transaction. The repository will use the transaction started by Begin().
	MenuRepository() MenuRepository

	// OrderRepository returns an OrderRepository instance bound to the current
	// transaction. The repository will use the transaction started by Begin().
	OrderRepository() OrderRepository
}
