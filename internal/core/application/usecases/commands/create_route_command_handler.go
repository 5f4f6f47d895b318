package commands

import (
	"context"

	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/services"
)

// CreateRouteCommandHandler publishes a route with its full capacity available.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	ledger     services.CapacityLedger
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewCapacityLedger(),
	}
}

// Handle validates the command and stores the new active route.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
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

	r, err := h.ledger.CreateRoute(ctx, uow.RouteRepository(), services.RouteParams{
		ID:          cmd.RouteID(),
		CarrierID:   cmd.CarrierID(),
		Origin:      cmd.Origin(),
		Destination: cmd.Destination(),
		Schedule:    cmd.Schedule(),
		MaxWeight:   cmd.MaxWeight(),
		PricePerKg:  cmd.PricePerKg(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
