package queries_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchRoutesQuery(t *testing.T) {
	t.Run("should normalize filters", func(t *testing.T) {
		local := time.FixedZone("UTC+2", 2*60*60)
		from := time.Date(2026, 6, 1, 10, 0, 0, 0, local)

		q, err := queries.NewSearchRoutesQuery("  lis ", "", &from, nil)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "lis", q.Origin())
		assert.Empty(t, q.Destination())
		require.NotNil(t, q.FromDate())
		assert.Equal(t, time.UTC, q.FromDate().Location())
		assert.True(t, q.FromDate().Equal(from))
		assert.Nil(t, q.ToDate())
	})

	t.Run("should reject inverted date window", func(t *testing.T) {
		from := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
		to := from.Add(-time.Hour)

		_, err := queries.NewSearchRoutesQuery("", "", &from, &to)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept a single-instant window", func(t *testing.T) {
		at := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

		_, err := queries.NewSearchRoutesQuery("", "", &at, &at)

		require.NoError(t, err)
	})
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.SearchRoutesQuery{}.Validate(), queries.ErrSearchRoutesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetRouteQuery{}.Validate(), queries.ErrGetRouteQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetShipmentQuery{}.Validate(), queries.ErrGetShipmentQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListShipmentsQuery{}.Validate(), queries.ErrListShipmentsQueryIsNotConstructed)
}

func TestNewGetRouteQuery(t *testing.T) {
	id := kernel.NewUUID()

	q, err := queries.NewGetRouteQuery(id)
	require.NoError(t, err)
	assert.True(t, q.RouteID().IsEqual(id))

	_, err = queries.NewGetRouteQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetShipmentQuery(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewListShipmentsQuery(t *testing.T) {
	t.Run("should copy the status filter", func(t *testing.T) {
		st := shipment.Pending

		q, err := queries.NewListShipmentsQuery(" user-1 ", &st)

		require.NoError(t, err)
		assert.Equal(t, "user-1", q.UserID())
		require.NotNil(t, q.Status())
		assert.NotSame(t, &st, q.Status())
		assert.Equal(t, shipment.Pending, *q.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		st := shipment.Unknown

		_, err := queries.NewListShipmentsQuery("user-1", &st)

		require.Error(t, err)
	})

	t.Run("should allow no filters", func(t *testing.T) {
		q, err := queries.NewListShipmentsQuery("", nil)

		require.NoError(t, err)
		assert.Empty(t, q.UserID())
		assert.Nil(t, q.Status())
	})
}
