package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Route is a carrier's scheduled transport offer with a finite weight capacity.
// It is the aggregate root that owns the capacity bookkeeping for its shipments.
//
// Route follows these invariants:
//   - maxWeight is positive and never changes after creation
//   - 0 <= availableCapacity <= maxWeight
//   - capacity is only reserved while the route is Active
//   - Completed and Cancelled are final statuses
//
// Reserve and Release are the only methods that touch availableCapacity; the
// CapacityLedger domain service is their only caller.
type Route struct {
	id                kernel.UUID
	carrierID         string
	origin            string
	destination       string
	schedule          Schedule
	maxWeight         kernel.Weight
	pricePerKg        float64
	availableCapacity kernel.Weight
	status            Status

	guard guard.ConstructorGuard
}

// NewRoute creates an Active route whose available capacity equals maxWeight.
//
// Every validation failure is collected and returned wrapped in
// ErrInvalidRouteParameters, so callers can match the kind with errors.Is and
// still read each field-level reason.
//
// Example:
//
//	schedule, _ := route.NewSchedule(departure, arrival)
//	maxWeight, _ := kernel.NewWeight(100)
//	r, err := route.NewRoute(kernel.NewUUID(), carrierID, "Lisbon", "Porto", schedule, maxWeight, 2.5)
//	if errors.Is(err, route.ErrInvalidRouteParameters) {
//	    // report the field errors to the carrier
//	}
func NewRoute(
	id kernel.UUID,
	carrierID string,
	origin string,
	destination string,
	schedule Schedule,
	maxWeight kernel.Weight,
	pricePerKg float64,
) (*Route, error) {
	r := &Route{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCarrierID(carrierID),
		r.setOrigin(origin),
		r.setDestination(destination),
		r.setSchedule(schedule),
		r.setMaxWeight(maxWeight),
		r.setPricePerKg(pricePerKg),
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRouteParameters, err)
	}

	r.availableCapacity = maxWeight
	return r, nil
}

// RestoreRoute rebuilds a route from storage, including its current capacity
// and status.
func RestoreRoute(
	id kernel.UUID,
	carrierID string,
	origin string,
	destination string,
	schedule Schedule,
	maxWeight kernel.Weight,
	pricePerKg float64,
	availableCapacity kernel.Weight,
	status Status,
) (*Route, error) {
	r := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCarrierID(carrierID),
		r.setOrigin(origin),
		r.setDestination(destination),
		r.setSchedule(schedule),
		r.setMaxWeight(maxWeight),
		r.setPricePerKg(pricePerKg),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := r.setAvailableCapacity(availableCapacity); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the route was built by NewRoute or RestoreRoute.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares routes by identity.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

// CarrierID returns the opaque identity of the carrier that owns the route.
func (r *Route) CarrierID() string {
	return r.carrierID
}

func (r *Route) Origin() string {
	return r.origin
}

func (r *Route) Destination() string {
	return r.destination
}

func (r *Route) Schedule() Schedule {
	return r.schedule
}

func (r *Route) MaxWeight() kernel.Weight {
	return r.maxWeight
}

func (r *Route) PricePerKg() float64 {
	return r.pricePerKg
}

func (r *Route) AvailableCapacity() kernel.Weight {
	return r.availableCapacity
}

func (r *Route) Status() Status {
	return r.status
}

// ReservedWeight is the capacity currently held by non-cancelled shipments.
func (r *Route) ReservedWeight() kernel.Weight {
	reserved, err := r.maxWeight.Sub(r.availableCapacity)
	if err != nil {
		return kernel.ZeroWeight()
	}
	return reserved
}

// CanReserve checks a reservation without applying it.
//
// Returns:
//   - a ValueIsInvalidError if amount is zero or not constructed
//   - a *NotActiveError (ErrRouteNotActive) if the route is not Active
//   - a *CapacityExceededError (ErrCapacityExceeded) if amount > availableCapacity
func (r *Route) CanReserve(amount kernel.Weight) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", errors.New("0 is not greater than 0"))
	}

	if r.status != Active {
		return NewNotActiveError(r.id, r.status)
	}

	if amount.GreaterThan(r.availableCapacity) {
		return NewCapacityExceededError(r.id, amount, r.availableCapacity)
	}

	return nil
}

// Reserve debits amount from the available capacity.
func (r *Route) Reserve(amount kernel.Weight) error {
	if err := r.CanReserve(amount); err != nil {
		return err
	}

	available, err := r.availableCapacity.Sub(amount)
	if err != nil {
		return err
	}

	r.availableCapacity = available
	return nil
}

// Release credits amount back to the available capacity, capped at maxWeight.
// It has no deduplication: releasing the same reservation twice credits it
// twice, so callers release exactly once per cancelled shipment. Releasing on
// a route that is no longer Active is allowed so the capacity arithmetic stays
// consistent for every route.
func (r *Route) Release(amount kernel.Weight) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	r.availableCapacity = r.availableCapacity.Add(amount).Min(r.maxWeight)
	return nil
}

// Complete moves an Active route to Completed.
func (r *Route) Complete() error {
	return r.changeStatus(Completed)
}

// Cancel moves an Active route to Cancelled.
func (r *Route) Cancel() error {
	return r.changeStatus(Cancelled)
}

// ChangeStatus moves the route to next, following the route status graph.
func (r *Route) ChangeStatus(next Status) error {
	return r.changeStatus(next)
}

// HasArrivedBy reports whether the scheduled arrival is before t.
func (r *Route) HasArrivedBy(t time.Time) bool {
	return r.schedule.HasArrivedBy(t)
}

func (r *Route) changeStatus(next Status) error {
	if r.status != Active {
		return NewNotActiveError(r.id, r.status)
	}

	newStatus, err := r.status.TransitionTo(next)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCarrierID(carrierID string) error {
	if strings.TrimSpace(carrierID) == "" {
		return errs.NewValueIsRequiredError("carrierId")
	}
	r.carrierID = carrierID
	return nil
}

func (r *Route) setOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}

func (r *Route) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	r.schedule = schedule
	return nil
}

func (r *Route) setMaxWeight(maxWeight kernel.Weight) error {
	if err := maxWeight.Validate(); err != nil {
		return err
	}
	if maxWeight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("maxWeight is invalid", errors.New("0 is not greater than 0"))
	}
	r.maxWeight = maxWeight
	return nil
}

func (r *Route) setPricePerKg(pricePerKg float64) error {
	if math.IsNaN(pricePerKg) || math.IsInf(pricePerKg, 0) || pricePerKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricePerKg is invalid",
			fmt.Errorf("%v is not greater than 0", pricePerKg),
		)
	}
	r.pricePerKg = pricePerKg
	return nil
}

// setAvailableCapacity is used during restoration; it requires maxWeight to be set.
func (r *Route) setAvailableCapacity(available kernel.Weight) error {
	if err := available.Validate(); err != nil {
		return err
	}
	if available.GreaterThan(r.maxWeight) {
		return errs.NewValueIsOutOfRangeError(
			"availableCapacity", available.Kilograms(), 0, r.maxWeight.Kilograms())
	}
	r.availableCapacity = available
	return nil
}
