package memory

import (
	"context"

	"shipping/internal/core/ports"
)

type UnitOfWorkFactory struct {
	store *Store
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store lock from Begin until Commit or Rollback.
// It must not be shared between goroutines.
type UnitOfWork struct {
	store  *Store
	staged *state
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.staged = uow.store.state.clone()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return errNoTransaction
	}

	uow.store.state = uow.staged
	uow.staged = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return errNoTransaction
	}

	uow.staged = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) RouteRepository() ports.RouteRepository {
	return &RouteRepository{uow: uow}
}

func (uow *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &ShipmentRepository{uow: uow}
}

func (uow *UnitOfWork) current() (*state, error) {
	if uow.staged == nil {
		return nil, errNoTransaction
	}
	return uow.staged, nil
}
