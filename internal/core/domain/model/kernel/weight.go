package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	// GramsPerKilogram converts between the API unit and the stored unit.
	GramsPerKilogram = 1000

	// MaxKilograms bounds any single weight handled by the marketplace.
	MaxKilograms = 1_000_000

	maxGrams = MaxKilograms * GramsPerKilogram
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or WeightFromGrams constructors")

// Weight is a non-negative mass stored as whole grams.
//
// The API exchanges kilograms as real numbers; keeping grams as int64 makes
// capacity arithmetic exact, so "available = max - sum(reserved)" holds with
// plain equality and storage can compare capacities as integers.
//
// Example:
//
//	w, err := kernel.NewWeight(12.5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(w.Grams()) // 12500
type Weight struct { //nolint:recvcheck //using for validation
	grams int64
	guard guard.ConstructorGuard
}

// NewWeight converts kilograms to a positive Weight, rounding to the nearest
// gram. NaN, infinities, values that round to zero grams and values above
// MaxKilograms are rejected.
func NewWeight(kilograms float64) (Weight, error) {
	if math.IsNaN(kilograms) || math.IsInf(kilograms, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%v is not a finite number", kilograms),
		)
	}

	if kilograms <= 0 || kilograms > MaxKilograms {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kilograms, 0, MaxKilograms)
	}

	grams := int64(math.Round(kilograms * GramsPerKilogram))
	if grams == 0 {
		return Weight{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"weight", kilograms, 0, MaxKilograms, errors.New("rounds to zero grams"))
	}

	return WeightFromGrams(grams)
}

// WeightFromGrams restores a Weight from its stored representation.
// Zero is allowed: an exhausted route has zero available capacity.
func WeightFromGrams(grams int64) (Weight, error) {
	if grams < 0 || grams > maxGrams {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight in grams", grams, 0, maxGrams)
	}

	return Weight{grams: grams, guard: guard.NewConstructorGuard()}, nil
}

// ZeroWeight returns a valid Weight of zero grams.
func ZeroWeight() Weight {
	return Weight{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the Weight came from a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Grams returns the stored value.
func (w Weight) Grams() int64 {
	return w.grams
}

// Kilograms returns the value in the API unit.
func (w Weight) Kilograms() float64 {
	return float64(w.grams) / GramsPerKilogram
}

// IsZero reports whether the weight is zero grams.
func (w Weight) IsZero() bool {
	return w.grams == 0
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.grams == other.grams
}

// GreaterThan reports whether w is strictly heavier than other.
func (w Weight) GreaterThan(other Weight) bool {
	return w.grams > other.grams
}

// Add returns the sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{grams: w.grams + other.grams, guard: guard.NewConstructorGuard()}
}

// Sub returns w minus other, failing when the result would be negative.
func (w Weight) Sub(other Weight) (Weight, error) {
	if other.grams > w.grams {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("cannot subtract %s from %s", other, w),
		)
	}

	return Weight{grams: w.grams - other.grams, guard: guard.NewConstructorGuard()}, nil
}

// Min returns the lighter of both weights.
func (w Weight) Min(other Weight) Weight {
	if other.grams < w.grams {
		return other
	}
	return w
}

// String formats the weight in kilograms, e.g. "12.5 kg".
func (w Weight) String() string {
	return strconv.FormatFloat(w.Kilograms(), 'f', -1, 64) + " kg"
}
