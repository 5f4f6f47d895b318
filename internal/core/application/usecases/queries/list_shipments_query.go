package queries

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists the shipments a user takes part in, either as the
// sender or as the carrier of the shipment's route.
//
// An empty userID lists every shipment. A nil status lists every status.
type ListShipmentsQuery struct {
	userID string
	status *shipment.Status

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(userID string, status *shipment.Status) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{
		userID: strings.TrimSpace(userID),
		guard:  guard.NewConstructorGuard(),
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
		st := *status
		q.status = &st
	}
	return q, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) UserID() string {
	return q.userID
}

func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}
