package http

import (
	"fmt"
	"log/slog"
	"sync"

	"shipping/internal/generated/servers"
	"shipping/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "shipping"

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwagger publishes the OpenAPI document to swag once per process;
// swag panics on a second registration under the same name.
func registerSwagger() error {
	swaggerOnce.Do(func() {
		doc, err := newSwaggerDoc()
		if err != nil {
			swaggerErr = err
			return
		}
		swag.Register(swaggerInstance, doc)
	})
	return swaggerErr
}

// NewRouter builds the echo instance serving the API, health, metrics and
// Swagger UI endpoints.
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}
	if err := registerSwagger(); err != nil {
		return nil, fmt.Errorf("register swagger document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(Metrics())
	e.Use(validator)

	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
