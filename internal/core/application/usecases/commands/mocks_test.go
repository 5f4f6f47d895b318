package commands_test

import (
	"context"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*route.Route); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRouteRepository) UpdateStatus(ctx context.Context, r *route.Route, expected route.Status) (bool, error) {
	args := m.Called(ctx, r, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteRepository) ReserveCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	args := m.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	args := m.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteRepository) CompleteArrivedBefore(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(
	ctx context.Context,
	s *shipment.Shipment,
	expected shipment.Status,
) (bool, error) {
	args := m.Called(ctx, s, expected)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

// memoryFactories adapt one memory store to both factory shapes.
type memoryUoWFactory struct{ f ports.UnitOfWorkFactory }

func (m memoryUoWFactory) Create() commands.UoW { return m.f.Create() }

type memoryRouteUoWFactory struct{ f ports.UnitOfWorkFactory }

func (m memoryRouteUoWFactory) Create() commands.RouteUoW { return m.f.Create() }
