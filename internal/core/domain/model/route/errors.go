package route

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidRouteParameters wraps every validation failure raised while
	// creating a route.
	ErrInvalidRouteParameters = errors.New("invalid route parameters")

	// ErrRouteNotActive is returned when a route that is completed or cancelled
	// is asked to accept a shipment or change status.
	ErrRouteNotActive = errors.New("route is not active")

	// ErrCapacityExceeded is returned when a reservation asks for more weight
	// than the route has available.
	ErrCapacityExceeded = errors.New("route capacity exceeded")

	// ErrRouteIsNotConstructed indicates a Route that bypassed NewRoute and RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructors")
)

// CapacityExceededError carries the numbers behind ErrCapacityExceeded so the
// caller can re-check and resubmit.
type CapacityExceededError struct {
	RouteID   kernel.UUID
	Requested kernel.Weight
	Available kernel.Weight
}

func NewCapacityExceededError(routeID kernel.UUID, requested, available kernel.Weight) *CapacityExceededError {
	return &CapacityExceededError{
		RouteID:   routeID,
		Requested: requested,
		Available: available,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: route %s has %s available, %s requested",
		ErrCapacityExceeded, e.RouteID, e.Available, e.Requested)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// NotActiveError carries the status that made a route reject a request.
type NotActiveError struct {
	RouteID kernel.UUID
	Status  Status
}

func NewNotActiveError(routeID kernel.UUID, status Status) *NotActiveError {
	return &NotActiveError{RouteID: routeID, Status: status}
}

func (e *NotActiveError) Error() string {
	return fmt.Sprintf("%s: route %s is %s", ErrRouteNotActive, e.RouteID, e.Status)
}

func (e *NotActiveError) Unwrap() error {
	return ErrRouteNotActive
}
