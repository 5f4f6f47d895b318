package shipment

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Shipment is a sender's request to move one package on one route.
// It is the aggregate root of the shipment lifecycle.
//
// Shipment follows these invariants:
//   - id, routeID and senderID are always set
//   - weight is positive and never changes after creation
//   - status changes only along the edges of the Status state machine
//   - shipments are never deleted; Cancelled is how a shipment ends early
//
// Capacity bookkeeping lives on the route. A Shipment only reports, through
// TransitionTo, whether a status change must give its weight back.
type Shipment struct {
	id          kernel.UUID
	routeID     kernel.UUID
	senderID    string
	description string
	weight      kernel.Weight
	status      Status
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a Pending shipment.
//
// Parameters:
//   - id: caller-supplied or freshly generated identifier
//   - routeID: the route the weight was reserved on
//   - senderID: opaque identity of the sender, non-empty
//   - description: free text, may be empty
//   - weight: positive package weight
//
// NewShipment does not reserve capacity. Callers reserve the weight on the
// route first, in the same unit of work.
func NewShipment(
	id kernel.UUID,
	routeID kernel.UUID,
	senderID string,
	description string,
	weight kernel.Weight,
) (*Shipment, error) {
	s := &Shipment{
		description: strings.TrimSpace(description),
		status:      Pending,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setRouteID(routeID),
		s.setSenderID(senderID),
		s.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from storage.
func RestoreShipment(
	id kernel.UUID,
	routeID kernel.UUID,
	senderID string,
	description string,
	weight kernel.Weight,
	status Status,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		description: description,
		status:      status,
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setRouteID(routeID),
		s.setSenderID(senderID),
		s.setWeight(weight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was built by NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) RouteID() kernel.UUID {
	return s.routeID
}

func (s *Shipment) SenderID() string {
	return s.senderID
}

func (s *Shipment) Description() string {
	return s.description
}

func (s *Shipment) Weight() kernel.Weight {
	return s.weight
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// TransitionTo moves the shipment to next.
//
// Returns:
//   - (previous status, true, nil) when the move releases capacity
//   - (previous status, false, nil) for every other legal move
//   - an *InvalidTransitionError if the edge does not exist; the shipment is unchanged
//
// The previous status is what a storage compare-and-set must expect.
func (s *Shipment) TransitionTo(next Status) (Status, bool, error) {
	previous := s.status

	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return previous, false, err
	}

	s.status = newStatus
	return previous, previous.ReleasesCapacity(newStatus), nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	s.routeID = routeID
	return nil
}

func (s *Shipment) setSenderID(senderID string) error {
	if strings.TrimSpace(senderID) == "" {
		return errs.NewValueIsRequiredError("senderId")
	}
	s.senderID = senderID
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.IsZero() {
		return errs.NewValueIsOutOfRangeError("weight", weight.Kilograms(), 0, kernel.MaxKilograms)
	}
	s.weight = weight
	return nil
}
