package shipment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is matched by every rejected status change.
	ErrInvalidTransition = errors.New("invalid shipment status transition")

	// ErrShipmentAlreadyExists is returned when a shipment id is reused.
	ErrShipmentAlreadyExists = errors.New("shipment already exists")

	// ErrShipmentIsNotConstructed is returned when a Shipment bypassed its constructors.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructors")
)

// InvalidTransitionError names the illegal from -> to pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
