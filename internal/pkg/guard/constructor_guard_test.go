package guard_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Route must be created via NewRoute")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuard_EmbeddedInValueObject mirrors how kernel.Weight and the
// command types use the guard.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errParcelNotConstructed := errors.New("Parcel must be created via NewParcel")

	type Parcel struct {
		grams int64
		guard guard.ConstructorGuard
	}

	newParcel := func(grams int64) (Parcel, error) {
		if grams <= 0 {
			return Parcel{}, errors.New("grams must be positive")
		}
		return Parcel{grams: grams, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_value_is_valid", func(t *testing.T) {
		p, err := newParcel(1500)

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errParcelNotConstructed))
		assert.Equal(t, int64(1500), p.grams)
	})

	t.Run("struct_literal_is_invalid", func(t *testing.T) {
		p := Parcel{grams: 1500}

		assert.Equal(t, errParcelNotConstructed, p.guard.Validate(errParcelNotConstructed))
	})

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		p, err := newParcel(10)
		require.NoError(t, err)

		cp := p

		require.NoError(t, cp.guard.Validate(errParcelNotConstructed))
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan struct{})
	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}

	for range 50 {
		<-done
	}
}
