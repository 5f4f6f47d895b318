package route

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status is the lifecycle state of a route.
//
// State transitions:
//
//	Active ──┬──> Completed
//	         └──> Cancelled
//
// Only Active routes accept shipment requests. Completed and Cancelled are final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status; the route accepts shipment requests.
	Active

	// Completed marks a route whose trip is over.
	Completed

	// Cancelled marks a route withdrawn by its carrier.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts the wire representation ("active", "completed",
// "cancelled") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"route status is invalid",
		fmt.Errorf("%q is not a valid route status", s),
	)
}

// Validate rejects Unknown and out-of-range values, typically read from storage.
func (s Status) Validate() error {
	if s != Active && s != Completed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"route status is invalid",
			fmt.Errorf("%d is not a valid route status", s),
		)
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further route transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo returns next if the route may move there from s.
// Every allowed transition leaves Active, so any other source status yields
// ErrRouteNotActive.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s != Active {
		return Unknown, fmt.Errorf("%w: cannot move from %s to %s", ErrRouteNotActive, s, next)
	}

	if next == Active {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"route status is invalid",
			fmt.Errorf("route is already %s", s),
		)
	}

	return next, nil
}
