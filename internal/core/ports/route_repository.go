// Package ports defines the persistence contracts of the shipping core.
// Adapters under internal/adapters/out implement them; the domain and the
// application layer depend only on these interfaces.
package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
//
// Capacity is never written through a plain update. ReserveCapacity and
// ReleaseCapacity are atomic read-modify-write operations evaluated against
// the stored value, so concurrent reservations cannot oversell a route.
type RouteRepository interface {
	// Add persists a new route aggregate.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get loads a route by id. A missing route yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// UpdateStatus stores aggregate.Status() only if the stored status still
	// equals expected. It reports false when another writer got there first.
	UpdateStatus(ctx context.Context, aggregate *route.Route, expected route.Status) (bool, error)

	// ReserveCapacity subtracts amount from the stored available capacity if
	// the route is active and has at least amount available. It reports
	// false, without changing anything, otherwise.
	//
	// Example:
	//   ok, err := repo.ReserveCapacity(ctx, routeID, weight)
	//   if err == nil && !ok {
	//       // reload the route to find out whether it is inactive or full
	//   }
	ReserveCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error)

	// ReleaseCapacity adds amount to the stored available capacity, capped at
	// the route's max weight, in any status. It reports false if the route
	// does not exist.
	ReleaseCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error)

	// CompleteArrivedBefore marks every active route whose arrival is before
	// at as completed and returns how many routes changed.
	CompleteArrivedBefore(ctx context.Context, at time.Time) (int64, error)
}
