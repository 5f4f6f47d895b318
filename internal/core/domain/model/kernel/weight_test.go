package kernel_test

import (
	"math"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should convert kilograms to grams", func(t *testing.T) {
		testCases := []struct {
			kilograms float64
			grams     int64
		}{
			{1, 1000},
			{12.5, 12500},
			{0.001, 1},
			{0.0015, 2},
			{kernel.MaxKilograms, kernel.MaxKilograms * kernel.GramsPerKilogram},
		}

		for _, tc := range testCases {
			w, err := kernel.NewWeight(tc.kilograms)

			require.NoError(t, err)
			require.NoError(t, w.Validate())
			assert.Equal(t, tc.grams, w.Grams())
		}
	})

	t.Run("should reject non positive and oversized values", func(t *testing.T) {
		for _, kg := range []float64{0, -1, -0.5, kernel.MaxKilograms + 1} {
			_, err := kernel.NewWeight(kg)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "kg=%v", kg)
		}
	})

	t.Run("should reject values that round to zero grams", func(t *testing.T) {
		_, err := kernel.NewWeight(0.0004)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "rounds to zero grams")
	})

	t.Run("should reject NaN and infinities", func(t *testing.T) {
		for _, kg := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewWeight(kg)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestWeightFromGrams(t *testing.T) {
	t.Run("should allow zero", func(t *testing.T) {
		w, err := kernel.WeightFromGrams(0)

		require.NoError(t, err)
		assert.True(t, w.IsZero())
		assert.True(t, w.IsEqual(kernel.ZeroWeight()))
	})

	t.Run("should reject negative grams", func(t *testing.T) {
		_, err := kernel.WeightFromGrams(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWeight_Arithmetic(t *testing.T) {
	sixty := mustWeight(t, 60)
	forty := mustWeight(t, 40)

	t.Run("Add and Sub are exact", func(t *testing.T) {
		hundred := sixty.Add(forty)
		assert.Equal(t, int64(100_000), hundred.Grams())

		rest, err := hundred.Sub(sixty)
		require.NoError(t, err)
		assert.True(t, rest.IsEqual(forty))
	})

	t.Run("Sub fails below zero", func(t *testing.T) {
		_, err := forty.Sub(sixty)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("comparisons", func(t *testing.T) {
		assert.True(t, sixty.GreaterThan(forty))
		assert.False(t, forty.GreaterThan(sixty))
		assert.False(t, forty.GreaterThan(forty))
		assert.True(t, sixty.Min(forty).IsEqual(forty))
	})

	t.Run("String uses kilograms", func(t *testing.T) {
		assert.Equal(t, "12.5 kg", mustWeight(t, 12.5).String())
		assert.Equal(t, "0 kg", kernel.ZeroWeight().String())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var w kernel.Weight

		assert.Equal(t, kernel.ErrWeightIsNotConstructed, w.Validate())
	})
}

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}
