package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand moves a shipment to a new status.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand checks that the id is set and the target is a
// real status. Whether the edge exists is decided against the stored shipment.
func NewTransitionShipmentCommand(shipmentID kernel.UUID, status shipment.Status) (TransitionShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), status.Validate()); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return TransitionShipmentCommand{
		shipmentID: shipmentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c TransitionShipmentCommand) Status() shipment.Status {
	return c.status
}
