package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedShipment(t *testing.T, id, routeID kernel.UUID, kg float64, status shipment.Status) *shipment.Shipment {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	s, err := shipment.RestoreShipment(id, routeID, "sender", "", w, status, time.Now())
	require.NoError(t, err)
	return s
}

func TestNewTransitionShipmentCommand(t *testing.T) {
	_, err := commands.NewTransitionShipmentCommand(kernel.NewUUID(), shipment.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewTransitionShipmentCommand(kernel.NewUUID(), shipment.Accepted)
	require.NoError(t, err)
	assert.Equal(t, shipment.Accepted, cmd.Status())
}

func TestTransitionShipmentCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	id, routeID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Accepted)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", ctx, id).Return(storedShipment(t, id, routeID, 5, shipment.Pending), nil).Once(),
		shipments.On("UpdateStatus", ctx, mock.AnythingOfType("*shipment.Shipment"), shipment.Pending).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Accepted, s.Status())
	uow.AssertNotCalled(t, "RouteRepository")
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_CancelReleasesOnce(t *testing.T) {
	ctx := t.Context()
	id, routeID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Cancelled)
	require.NoError(t, err)
	stored := storedShipment(t, id, routeID, 7.5, shipment.Pending)

	shipments := new(MockShipmentRepository)
	routes := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", ctx, id).Return(stored, nil).Once(),
		shipments.On("UpdateStatus", ctx, stored, shipment.Pending).Return(true, nil).Once(),
		uow.On("RouteRepository").Return(routes).Once(),
		routes.On("ReleaseCapacity", ctx, routeID, stored.Weight()).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Cancelled, s.Status())
	routes.AssertNumberOfCalls(t, "ReleaseCapacity", 1)
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_IllegalEdge(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Cancelled)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("Get", ctx, id).Return(storedShipment(t, id, kernel.NewUUID(), 1, shipment.Delivered), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	var transitionErr *shipment.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, shipment.Delivered, transitionErr.From)
	assert.Equal(t, shipment.Cancelled, transitionErr.To)
	shipments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "RouteRepository")
}

func TestTransitionShipmentCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	id, routeID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Cancelled)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", ctx, id).Return(storedShipment(t, id, routeID, 1, shipment.Pending), nil).Once(),
		shipments.On("UpdateStatus", ctx, mock.Anything, shipment.Pending).Return(false, nil).Once(),
		shipments.On("Get", ctx, id).Return(storedShipment(t, id, routeID, 1, shipment.Cancelled), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cancelled -> cancelled")
	uow.AssertNotCalled(t, "RouteRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Accepted)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("shipmentId", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
