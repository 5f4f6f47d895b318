package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/pgtest"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.pg.DB, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	s := suite.createTestShipment(12.5)
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()

	suite.Require().NoError(suite.repository.Add(ctx, s))

	stored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(s))
	suite.True(stored.RouteID().IsEqual(s.RouteID()))
	suite.Equal(s.SenderID(), stored.SenderID())
	suite.Equal(s.Description(), stored.Description())
	suite.Equal(s.Weight().Grams(), stored.Weight().Grams())
	suite.Equal(shipment.Pending, stored.Status())
	suite.WithinDuration(s.CreatedAt(), stored.CreatedAt(), time.Millisecond)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	ctx := context.Background()
	s := suite.createTestShipment(1)
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	err := suite.repository.Add(ctx, s)

	suite.Require().ErrorIs(err, shipment.ErrShipmentAlreadyExists)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_UnconstructedShipment() {
	err := suite.repository.Add(context.Background(), &shipment.Shipment{})

	suite.Require().ErrorIs(err, shipment.ErrShipmentIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdateStatus_CompareAndSet() {
	ctx := context.Background()
	s := suite.createTestShipment(3)
	suite.tracker.On("TrackAggregate", s.ID(), s).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	previous, _, err := s.TransitionTo(shipment.Accepted)
	suite.Require().NoError(err)

	ok, err := suite.repository.UpdateStatus(ctx, s, previous)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repository.UpdateStatus(ctx, s, previous)
	suite.Require().NoError(err)
	suite.False(ok, "stored status moved on")

	stored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Accepted, stored.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(kg float64) *shipment.Shipment {
	w, err := kernel.NewWeight(kg)
	suite.Require().NoError(err)
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "sender-9", "spare parts", w)
	suite.Require().NoError(err)
	return s
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
