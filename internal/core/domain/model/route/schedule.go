package route

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when validating a zero-value Schedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError("schedule must be created via NewSchedule constructor")

// Schedule holds a route's departure and arrival timestamps.
// Arrival may equal departure but never precede it.
type Schedule struct { //nolint:recvcheck //using for validation
	departure time.Time
	arrival   time.Time
	guard     guard.ConstructorGuard
}

// NewSchedule validates and builds a Schedule. Timestamps are normalized to UTC.
func NewSchedule(departure, arrival time.Time) (Schedule, error) {
	var problems []error
	if departure.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("departure"))
	}
	if arrival.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("arrival"))
	}
	if len(problems) == 0 && arrival.Before(departure) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"arrival is invalid",
			fmt.Errorf("arrival %s is before departure %s",
				arrival.UTC().Format(time.RFC3339), departure.UTC().Format(time.RFC3339)),
		))
	}

	if err := errors.Join(problems...); err != nil {
		return Schedule{}, err
	}

	return Schedule{
		departure: departure.UTC(),
		arrival:   arrival.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Schedule came from NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// Departure returns the departure timestamp in UTC.
func (s Schedule) Departure() time.Time {
	return s.departure
}

// Arrival returns the arrival timestamp in UTC.
func (s Schedule) Arrival() time.Time {
	return s.arrival
}

// HasArrivedBy reports whether the arrival lies strictly before t.
func (s Schedule) HasArrivedBy(t time.Time) bool {
	return s.arrival.Before(t)
}
