package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRequestShipmentCommandIsNotConstructed = errors.New(
	"RequestShipmentCommand must be created via NewRequestShipmentCommand constructor",
)

// RequestShipmentCommand represents a sender asking for room on a route.
//
// Example:
//
//	cmd, err := NewRequestShipmentCommand(kernel.NewUUID(), routeID, senderID, "two boxes of books", 12.5)
//	if err != nil {
//	    return err
//	}
//	s, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, route.ErrCapacityExceeded) {
//	    // the route is full
//	}
type RequestShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	routeID     kernel.UUID
	senderID    string
	description string
	weight      kernel.Weight

	guard guard.ConstructorGuard
}

// NewRequestShipmentCommand validates the request. weightKg must be positive.
func NewRequestShipmentCommand(
	shipmentID kernel.UUID,
	routeID kernel.UUID,
	senderID string,
	description string,
	weightKg float64,
) (RequestShipmentCommand, error) {
	cmd := RequestShipmentCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setRouteID(routeID),
		cmd.setSenderID(senderID),
		cmd.setWeight(weightKg),
	); err != nil {
		return RequestShipmentCommand{}, err
	}

	return cmd, nil
}

func (c RequestShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRequestShipmentCommandIsNotConstructed)
}

func (c RequestShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c RequestShipmentCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c RequestShipmentCommand) SenderID() string {
	return c.senderID
}

func (c RequestShipmentCommand) Description() string {
	return c.description
}

func (c RequestShipmentCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *RequestShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RequestShipmentCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

func (c *RequestShipmentCommand) setSenderID(senderID string) error {
	if strings.TrimSpace(senderID) == "" {
		return errs.NewValueIsRequiredError("senderId")
	}
	c.senderID = senderID
	return nil
}

func (c *RequestShipmentCommand) setWeight(weightKg float64) error {
	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return err
	}
	c.weight = weight
	return nil
}
