package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin.
	// Returns error if no active transaction, so a deferred Rollback after a
	// successful Commit reports an error that callers ignore.
	Rollback(ctx context.Context) error

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository
}
