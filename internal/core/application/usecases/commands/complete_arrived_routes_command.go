package commands

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCompleteArrivedRoutesCommandIsNotConstructed = errors.New(
	"CompleteArrivedRoutesCommand must be created via NewCompleteArrivedRoutesCommand constructor",
)

// CompleteArrivedRoutesCommand closes every active route whose arrival is
// before AsOf. It is issued by the route completion job.
type CompleteArrivedRoutesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewCompleteArrivedRoutesCommand(asOf time.Time) (CompleteArrivedRoutesCommand, error) {
	if asOf.IsZero() {
		return CompleteArrivedRoutesCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return CompleteArrivedRoutesCommand{
		asOf:  asOf.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteArrivedRoutesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteArrivedRoutesCommandIsNotConstructed)
}

func (c CompleteArrivedRoutesCommand) AsOf() time.Time {
	return c.asOf
}
