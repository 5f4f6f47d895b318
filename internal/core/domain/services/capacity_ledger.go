package services

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"
)

// RouteStore is the part of route persistence the ledger needs.
// ports.RouteRepository satisfies it.
type RouteStore interface {
	Add(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	ReserveCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error)
	ReleaseCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error)
}

// RouteParams describes a route a carrier wants to publish.
type RouteParams struct {
	ID          kernel.UUID
	CarrierID   string
	Origin      string
	Destination string
	Schedule    route.Schedule
	MaxWeight   kernel.Weight
	PricePerKg  float64
}

// CapacityLedger owns every change to a route's available capacity.
//
// Business rules:
//   - a new route starts with availableCapacity = maxWeight
//   - a reservation succeeds only on an active route with enough capacity,
//     judged against the stored value rather than a possibly stale copy
//   - a release adds the amount back, capped at maxWeight, in any route status
//   - the ledger does not deduplicate: each reservation is released at most
//     once by the shipment lifecycle
//
// Example usage:
//
//	ledger := services.NewCapacityLedger()
//	routes := uow.RouteRepository()
//	if err := ledger.Reserve(ctx, routes, routeID, weight); err != nil {
//	    // route.ErrRouteNotActive, route.ErrCapacityExceeded or errs.ErrObjectNotFound
//	    return err
//	}
type CapacityLedger struct{}

func NewCapacityLedger() CapacityLedger {
	return CapacityLedger{}
}

// CreateRoute validates the parameters and stores an active route with full capacity.
// Invalid parameters fail with route.ErrInvalidRouteParameters.
func (l CapacityLedger) CreateRoute(ctx context.Context, store RouteStore, p RouteParams) (*route.Route, error) {
	r, err := route.NewRoute(p.ID, p.CarrierID, p.Origin, p.Destination, p.Schedule, p.MaxWeight, p.PricePerKg)
	if err != nil {
		return nil, err
	}

	if err = store.Add(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// Reserve debits amount from the route's capacity.
//
// The route is loaded first so that an obviously impossible request fails
// with precise details without touching storage. The debit itself is the
// store's conditional update; when it reports no change the route is read
// again and the failure is classified from its current state.
//
// Returns:
//   - nil when the capacity was debited
//   - errs.ObjectNotFoundError if the route does not exist
//   - *route.NotActiveError (route.ErrRouteNotActive) if the route is not active
//   - *route.CapacityExceededError (route.ErrCapacityExceeded) if amount does not fit
func (l CapacityLedger) Reserve(ctx context.Context, store RouteStore, routeID kernel.UUID, amount kernel.Weight) error {
	r, err := store.Get(ctx, routeID)
	if err != nil {
		return err
	}

	if err = r.CanReserve(amount); err != nil {
		return err
	}

	reserved, err := store.ReserveCapacity(ctx, routeID, amount)
	if err != nil {
		return fmt.Errorf("reserve capacity on route %s: %w", routeID, err)
	}
	if reserved {
		return nil
	}

	// lost a race; report what the stored route looks like now
	current, err := store.Get(ctx, routeID)
	if err != nil {
		return err
	}
	if err = current.CanReserve(amount); err != nil {
		return err
	}

	return route.NewCapacityExceededError(routeID, amount, current.AvailableCapacity())
}

// Release credits amount back to the route, capped at its max weight.
func (l CapacityLedger) Release(ctx context.Context, store RouteStore, routeID kernel.UUID, amount kernel.Weight) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", errors.New("0 is not greater than 0"))
	}

	released, err := store.ReleaseCapacity(ctx, routeID, amount)
	if err != nil {
		return fmt.Errorf("release capacity on route %s: %w", routeID, err)
	}
	if !released {
		return errs.NewObjectNotFoundError("routeId", routeID)
	}

	return nil
}
