package commands

import (
	"context"

	"shipping/internal/core/domain/model/route"
)

// ChangeRouteStatusCommandHandler moves an active route to completed or
// cancelled. Shipments already on the route keep their status and capacity.
type ChangeRouteStatusCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewChangeRouteStatusCommandHandler(uowFactory RouteUoWFactory) ChangeRouteStatusCommandHandler {
	return ChangeRouteStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the route in its new status, or route.ErrRouteNotActive if
// the route had already left Active, including when a concurrent request won.
func (h *ChangeRouteStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRouteStatusCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routes := uow.RouteRepository()
	r, err := routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	previous := r.Status()
	if err = r.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	updated, err := routes.UpdateStatus(ctx, r, previous)
	if err != nil {
		return nil, err
	}
	if !updated {
		current, err := routes.Get(ctx, cmd.RouteID())
		if err != nil {
			return nil, err
		}
		return nil, route.NewNotActiveError(current.ID(), current.Status())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
