package commands

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a carrier publishing a new route.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand(kernel.NewUUID(), carrierID, "Lisbon", "Porto", departure, arrival, 250, 1.8)
//	if err != nil {
//	    return err // wraps route.ErrInvalidRouteParameters
//	}
//	r, err := handler.Handle(ctx, cmd)
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID     kernel.UUID
	carrierID   string
	origin      string
	destination string
	schedule    route.Schedule
	maxWeight   kernel.Weight
	pricePerKg  float64

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand converts the request values into domain values.
// Conversion failures are wrapped in route.ErrInvalidRouteParameters; the
// remaining rules are checked when the route is built.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	carrierID string,
	origin string,
	destination string,
	departure time.Time,
	arrival time.Time,
	maxWeightKg float64,
	pricePerKg float64,
) (CreateRouteCommand, error) {
	schedule, scheduleErr := route.NewSchedule(departure, arrival)
	maxWeight, weightErr := kernel.NewWeight(maxWeightKg)

	if err := errors.Join(routeID.Validate(), scheduleErr, weightErr); err != nil {
		return CreateRouteCommand{}, fmt.Errorf("%w: %w", route.ErrInvalidRouteParameters, err)
	}

	return CreateRouteCommand{
		routeID:     routeID,
		carrierID:   carrierID,
		origin:      origin,
		destination: destination,
		schedule:    schedule,
		maxWeight:   maxWeight,
		pricePerKg:  pricePerKg,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateRouteCommand) CarrierID() string {
	return c.carrierID
}

func (c CreateRouteCommand) Origin() string {
	return c.origin
}

func (c CreateRouteCommand) Destination() string {
	return c.destination
}

func (c CreateRouteCommand) Schedule() route.Schedule {
	return c.schedule
}

func (c CreateRouteCommand) MaxWeight() kernel.Weight {
	return c.maxWeight
}

func (c CreateRouteCommand) PricePerKg() float64 {
	return c.pricePerKg
}
