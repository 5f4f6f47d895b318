package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/metrics"
)

// RequestShipmentCommandHandler reserves capacity on a route and creates the
// pending shipment that holds it. Both happen in one unit of work: if the
// shipment cannot be stored, the reservation is rolled back with it.
type RequestShipmentCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.CapacityLedger
}

func NewRequestShipmentCommandHandler(uowFactory UoWFactory) RequestShipmentCommandHandler {
	return RequestShipmentCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewCapacityLedger(),
	}
}

// Handle returns the created shipment.
//
// Errors:
//   - errs.ErrObjectNotFound if the route does not exist
//   - route.ErrRouteNotActive if the route is completed or cancelled
//   - route.ErrCapacityExceeded if the weight does not fit
//   - shipment.ErrShipmentAlreadyExists if the shipment id is taken
func (h *RequestShipmentCommandHandler) Handle(ctx context.Context, cmd RequestShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.handle(ctx, cmd)
	metrics.RecordReservation(outcome(err))
	return s, err
}

func (h *RequestShipmentCommandHandler) handle(ctx context.Context, cmd RequestShipmentCommand) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.ledger.Reserve(ctx, uow.RouteRepository(), cmd.RouteID(), cmd.Weight()); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.RouteID(), cmd.SenderID(), cmd.Description(), cmd.Weight())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
