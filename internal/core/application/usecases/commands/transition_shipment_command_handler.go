package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/metrics"
)

// TransitionShipmentCommandHandler applies a shipment status change and, for
// a cancellation that still holds capacity, returns the weight to the route.
//
// The status write is a compare-and-set against the status the shipment was
// loaded with. Of two concurrent requests for the same shipment only one can
// win; the loser fails with shipment.ErrInvalidTransition computed from the
// status that is stored now, and its unit of work is rolled back. This is what
// guarantees a shipment's weight is released at most once.
type TransitionShipmentCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.CapacityLedger
}

func NewTransitionShipmentCommandHandler(uowFactory UoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewCapacityLedger(),
	}
}

// Handle returns the shipment in its new status.
func (h *TransitionShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.handle(ctx, cmd)
	metrics.RecordTransition(cmd.Status().String(), outcome(err))
	if err == nil && cmd.Status() == shipment.Cancelled {
		metrics.RecordRelease(s.Weight().Grams())
	}
	return s, err
}

func (h *TransitionShipmentCommandHandler) handle(
	ctx context.Context,
	cmd TransitionShipmentCommand,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()
	s, err := shipments.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	previous, release, err := s.TransitionTo(cmd.Status())
	if err != nil {
		return nil, err
	}

	updated, err := shipments.UpdateStatus(ctx, s, previous)
	if err != nil {
		return nil, err
	}
	if !updated {
		current, err := shipments.Get(ctx, cmd.ShipmentID())
		if err != nil {
			return nil, err
		}
		return nil, shipment.NewInvalidTransitionError(current.Status(), cmd.Status())
	}

	if release {
		if err = h.ledger.Release(ctx, uow.RouteRepository(), s.RouteID(), s.Weight()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
