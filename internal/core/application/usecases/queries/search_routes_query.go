package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSearchRoutesQueryIsNotConstructed = errors.New(
	"SearchRoutesQuery must be created via NewSearchRoutesQuery constructor",
)

// SearchRoutesQuery finds active routes a sender can book.
//
// Every filter is optional. Origin and destination match case-insensitively
// anywhere in the stored value; fromDate and toDate bound the departure
// inclusively.
//
// Example:
//
//	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
//	query, err := NewSearchRoutesQuery("lis", "", &from, nil)
//	if err != nil {
//	    return err
//	}
//	routes, err := handler.Handle(ctx, query)
type SearchRoutesQuery struct {
	origin      string
	destination string
	fromDate    *time.Time
	toDate      *time.Time

	guard guard.ConstructorGuard
}

func NewSearchRoutesQuery(origin, destination string, fromDate, toDate *time.Time) (SearchRoutesQuery, error) {
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return SearchRoutesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"toDate",
			fmt.Errorf("%s is before fromDate %s", toDate.Format(time.RFC3339), fromDate.Format(time.RFC3339)),
		)
	}

	q := SearchRoutesQuery{
		origin:      strings.TrimSpace(origin),
		destination: strings.TrimSpace(destination),
		guard:       guard.NewConstructorGuard(),
	}
	if fromDate != nil {
		from := fromDate.UTC()
		q.fromDate = &from
	}
	if toDate != nil {
		to := toDate.UTC()
		q.toDate = &to
	}
	return q, nil
}

func (q SearchRoutesQuery) Validate() error {
	return q.guard.Validate(ErrSearchRoutesQueryIsNotConstructed)
}

func (q SearchRoutesQuery) Origin() string {
	return q.origin
}

func (q SearchRoutesQuery) Destination() string {
	return q.destination
}

func (q SearchRoutesQuery) FromDate() *time.Time {
	return q.fromDate
}

func (q SearchRoutesQuery) ToDate() *time.Time {
	return q.toDate
}
