package http

import (
	"errors"
	"net/http"
	"time"

	"shipping/internal/generated/servers"
	"shipping/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc before they reach a
// handler. Paths the document does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return writeBadRequest(ctx, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return writeBadRequest(ctx, err.Error())
			}

			return next(ctx)
		}
	}, nil
}

// Metrics records one request counter and latency sample per request, keyed
// by the route template rather than the raw URL. Errors are rendered before
// recording so the status is final; ErrorHandler skips committed responses.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			metrics.RecordHTTPRequest(ctx.Request().Method, path, ctx.Response().Status, time.Since(start))
			return err
		}
	}
}

// swaggerDoc serves the OpenAPI document to the Swagger UI as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

func newSwaggerDoc() (swaggerDoc, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return swaggerDoc{}, err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return swaggerDoc{}, err
	}
	return swaggerDoc{json: string(raw)}, nil
}

func health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
