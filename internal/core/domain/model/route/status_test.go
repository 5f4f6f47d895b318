package route_test

import (
	"testing"

	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []route.Status{route.Active, route.Completed, route.Cancelled} {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := route.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := route.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid route status")
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		cases := map[string]route.Status{
			"active":    route.Active,
			"completed": route.Completed,
			"cancelled": route.Cancelled,
		}
		for in, want := range cases {
			got, err := route.ParseStatus(in)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, in := range []string{"", "unknown", "ACTIVE", "pending"} {
			got, err := route.ParseStatus(in)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, route.Unknown, got)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow leaving Active", func(t *testing.T) {
		next, err := route.Active.TransitionTo(route.Completed)
		require.NoError(t, err)
		assert.Equal(t, route.Completed, next)

		next, err = route.Active.TransitionTo(route.Cancelled)
		require.NoError(t, err)
		assert.Equal(t, route.Cancelled, next)
	})

	t.Run("should reject Active to Active", func(t *testing.T) {
		_, err := route.Active.TransitionTo(route.Active)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject any move from a final status", func(t *testing.T) {
		for _, from := range []route.Status{route.Completed, route.Cancelled} {
			for _, to := range []route.Status{route.Active, route.Completed, route.Cancelled} {
				_, err := from.TransitionTo(to)

				require.ErrorIs(t, err, route.ErrRouteNotActive, "%s -> %s", from, to)
			}
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := route.Active.TransitionTo(route.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, route.Active.IsFinal())
	assert.True(t, route.Completed.IsFinal())
	assert.True(t, route.Cancelled.IsFinal())
}
