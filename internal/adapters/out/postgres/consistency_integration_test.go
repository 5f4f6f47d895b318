package postgres_test

import (
	"context"

	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/core/domain/model/shipment"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckCapacityConservation() {
	ctx := context.Background()
	r := suite.seedRoute(100)
	kept := suite.newShipment(r.ID(), 30)
	cancelled := suite.newShipment(r.ID(), 20)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, s := range []*shipment.Shipment{kept, cancelled} {
		ok, err := uow.RouteRepository().ReserveCapacity(ctx, r.ID(), s.Weight())
		suite.Require().NoError(err)
		suite.Require().True(ok)
		suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	}
	previous, releases, err := cancelled.TransitionTo(shipment.Cancelled)
	suite.Require().NoError(err)
	suite.Require().True(releases)
	ok, err := uow.ShipmentRepository().UpdateStatus(ctx, cancelled, previous)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	ok, err = uow.RouteRepository().ReleaseCapacity(ctx, r.ID(), cancelled.Weight())
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Commit(ctx))

	violations, err := postgres_adapter.CheckCapacityConservation(ctx, suite.pg.DB)
	suite.Require().NoError(err)
	suite.Empty(violations)

	suite.Require().NoError(suite.pg.DB.Exec(
		"UPDATE routes SET available_capacity_grams = 65000 WHERE id = ?", r.ID().String()).Error)

	violations, err = postgres_adapter.CheckCapacityConservation(ctx, suite.pg.DB)
	suite.Require().NoError(err)
	suite.Require().Len(violations, 1)
	suite.True(violations[0].RouteID.IsEqual(r.ID()))
	suite.Equal(int64(65000), violations[0].AvailableGrams)
	suite.Equal(int64(70000), violations[0].ExpectedGrams())
	suite.Contains(violations[0].String(), "expected 70000g")
}
