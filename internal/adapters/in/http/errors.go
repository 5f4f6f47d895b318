package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in the "kind" field of an error body.
const (
	KindInvalidRouteParameters = "InvalidRouteParameters"
	KindValidation             = "ValidationError"
	KindNotFound               = "NotFound"
	KindRouteNotActive         = "RouteNotActive"
	KindCapacityExceeded       = "CapacityExceeded"
	KindInvalidTransition      = "InvalidTransition"
	KindAlreadyExists          = "AlreadyExists"
	KindInternal               = "Internal"
)

// classify maps a use case error to a status code and kind. Order matters:
// ErrInvalidRouteParameters wraps field errors that are also validation errors.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, route.ErrInvalidRouteParameters):
		return http.StatusBadRequest, KindInvalidRouteParameters
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, route.ErrRouteNotActive):
		return http.StatusConflict, KindRouteNotActive
	case errors.Is(err, route.ErrCapacityExceeded):
		return http.StatusConflict, KindCapacityExceeded
	case errors.Is(err, shipment.ErrInvalidTransition):
		return http.StatusConflict, KindInvalidTransition
	case errors.Is(err, shipment.ErrShipmentAlreadyExists):
		return http.StatusConflict, KindAlreadyExists
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, KindValidation
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func writeError(ctx echo.Context, err error) error {
	code, kind := classify(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err))
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{Code: code, Kind: kind, Message: message})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	})
}

// ErrorHandler renders echo errors (unknown routes, binding and validation
// failures) with the same body as use case errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = writeError(ctx, err)
		return
	}

	kind := KindInternal
	switch {
	case he.Code == http.StatusNotFound:
		kind = KindNotFound
	case he.Code < http.StatusInternalServerError:
		kind = KindValidation
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(he.Code)
		return
	}
	_ = ctx.JSON(he.Code, servers.Error{Code: he.Code, Kind: kind, Message: message})
}
