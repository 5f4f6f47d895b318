package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/guard"
)

var ErrChangeRouteStatusCommandIsNotConstructed = errors.New(
	"ChangeRouteStatusCommand must be created via NewChangeRouteStatusCommand constructor",
)

// ChangeRouteStatusCommand closes a route, either as completed or cancelled.
type ChangeRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	status  route.Status

	guard guard.ConstructorGuard
}

func NewChangeRouteStatusCommand(routeID kernel.UUID, status route.Status) (ChangeRouteStatusCommand, error) {
	if err := errors.Join(routeID.Validate(), status.Validate()); err != nil {
		return ChangeRouteStatusCommand{}, err
	}

	return ChangeRouteStatusCommand{
		routeID: routeID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteStatusCommandIsNotConstructed)
}

func (c ChangeRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c ChangeRouteStatusCommand) Status() route.Status {
	return c.status
}
