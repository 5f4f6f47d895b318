package commands

import (
	"errors"

	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/metrics"
)

// outcome maps a command error to a metrics label.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, errs.ErrObjectNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, route.ErrRouteNotActive):
		return metrics.OutcomeRouteNotActive
	case errors.Is(err, route.ErrCapacityExceeded):
		return metrics.OutcomeCapacityExceeded
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
