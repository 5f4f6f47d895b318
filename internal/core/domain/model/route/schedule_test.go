package route_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should build schedule and normalize to UTC", func(t *testing.T) {
		lisbon := time.FixedZone("WEST", 3600)
		s, err := route.NewSchedule(departure.In(lisbon), departure.Add(6*time.Hour))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, time.UTC, s.Departure().Location())
		assert.True(t, s.Departure().Equal(departure))
		assert.True(t, s.Arrival().Equal(departure.Add(6*time.Hour)))
	})

	t.Run("should accept arrival equal to departure", func(t *testing.T) {
		_, err := route.NewSchedule(departure, departure)

		require.NoError(t, err)
	})

	t.Run("should reject arrival before departure", func(t *testing.T) {
		_, err := route.NewSchedule(departure, departure.Add(-time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is before departure")
	})

	t.Run("should require both timestamps", func(t *testing.T) {
		_, err := route.NewSchedule(time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "departure")
		assert.Contains(t, err.Error(), "arrival")
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var s route.Schedule

		require.ErrorIs(t, s.Validate(), errs.ErrValueIsRequired)
	})
}

func TestSchedule_HasArrivedBy(t *testing.T) {
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(2 * time.Hour)
	s, err := route.NewSchedule(departure, arrival)
	require.NoError(t, err)

	assert.False(t, s.HasArrivedBy(arrival.Add(-time.Second)))
	assert.False(t, s.HasArrivedBy(arrival))
	assert.True(t, s.HasArrivedBy(arrival.Add(time.Second)))
}
