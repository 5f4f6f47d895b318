package shipment

import (
	"fmt"
	"slices"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a closed state machine: the only legal moves are the edges
// listed in getTransitions.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> InTransit ──> Delivered
//	          │
//	          └──> Cancelled
//
// Delivered and Cancelled are terminal. Status is stored as an integer and
// exchanged on the wire through String and ParseStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; capacity is already reserved on the route.
	Pending

	// Accepted indicates the carrier agreed to take the package.
	Accepted

	// InTransit indicates the package is on its way.
	InTransit

	// Delivered is a terminal status.
	Delivered

	// Cancelled is a terminal status. Cancelling returns the shipment's
	// weight to the route.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions is the complete edge list of the shipment state machine.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no outgoing edges
	return map[Status][]Status{
		Pending:   {Accepted, Cancelled},
		Accepted:  {InTransit},
		InTransit: {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, InTransit, Delivered, Cancelled}
}

// ParseStatus converts a wire name such as "in_transit" into a Status.
//
// Returns:
//   - the matching Status
//   - (Unknown, ValueIsInvalidError) for any other input, including "unknown"
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks that the value is one of the five lifecycle statuses.
// It is used on values coming from storage or the API.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
//
// Example:
//
//	fmt.Println(shipment.InTransit) // Output: "in_transit"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(getTransitions()[s])
}

// CanTransitionTo reports whether s -> next is an edge of the state machine.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(getTransitions()[s], next)
}

// TransitionTo validates the s -> next edge without side effects.
//
// Returns:
//   - (next, nil) when the edge exists
//   - (Unknown, *InvalidTransitionError) otherwise; the error names both
//     statuses and matches ErrInvalidTransition
//
// Example:
//
//	next, err := shipment.Delivered.TransitionTo(shipment.Cancelled)
//	// err: invalid shipment status transition: delivered -> cancelled
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// ReleasesCapacity reports whether moving from s to next returns the
// shipment's weight to its route. Only a cancellation of a shipment that is
// still holding capacity (pending or accepted) does.
func (s Status) ReleasesCapacity(next Status) bool {
	return next == Cancelled && (s == Pending || s == Accepted)
}
