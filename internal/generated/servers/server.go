package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Search active routes
	// (GET /api/v1/routes)
	SearchRoutes(ctx echo.Context, params SearchRoutesParams) error
	// Publish a route
	// (POST /api/v1/routes)
	CreateRoute(ctx echo.Context) error
	// (GET /api/v1/routes/{routeId})
	GetRoute(ctx echo.Context, routeId RouteId) error
	// Complete or cancel an active route
	// (PATCH /api/v1/routes/{routeId}/status)
	ChangeRouteStatus(ctx echo.Context, routeId RouteId) error
	// Shipments where the user is the sender or the route carrier
	// (GET /api/v1/shipments)
	ListShipments(ctx echo.Context, params ListShipmentsParams) error
	// Reserve capacity on a route and create a pending shipment
	// (POST /api/v1/shipments)
	RequestShipment(ctx echo.Context) error
	// (GET /api/v1/shipments/{shipmentId})
	GetShipment(ctx echo.Context, shipmentId ShipmentId) error
	// Move a shipment along its lifecycle
	// (PATCH /api/v1/shipments/{shipmentId}/status)
	TransitionShipment(ctx echo.Context, shipmentId ShipmentId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// SearchRoutes converts echo context to params.
func (w *ServerInterfaceWrapper) SearchRoutes(ctx echo.Context) error {
	var params SearchRoutesParams

	if err := runtime.BindQueryParameter("form", true, false, "origin", ctx.QueryParams(), &params.Origin); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter origin: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "destination", ctx.QueryParams(), &params.Destination); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter destination: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "fromDate", ctx.QueryParams(), &params.FromDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fromDate: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "toDate", ctx.QueryParams(), &params.ToDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter toDate: %s", err))
	}

	return w.Handler.SearchRoutes(ctx, params)
}

// CreateRoute converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRoute(ctx echo.Context) error {
	return w.Handler.CreateRoute(ctx)
}

// GetRoute converts echo context to params.
func (w *ServerInterfaceWrapper) GetRoute(ctx echo.Context) error {
	var routeId RouteId

	err := runtime.BindStyledParameterWithOptions("simple", "routeId", ctx.Param("routeId"), &routeId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter routeId: %s", err))
	}

	return w.Handler.GetRoute(ctx, routeId)
}

// ChangeRouteStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeRouteStatus(ctx echo.Context) error {
	var routeId RouteId

	err := runtime.BindStyledParameterWithOptions("simple", "routeId", ctx.Param("routeId"), &routeId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter routeId: %s", err))
	}

	return w.Handler.ChangeRouteStatus(ctx, routeId)
}

// ListShipments converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	var params ListShipmentsParams

	if err := runtime.BindQueryParameter("form", true, false, "userId", ctx.QueryParams(), &params.UserId); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListShipments(ctx, params)
}

// RequestShipment converts echo context to params.
func (w *ServerInterfaceWrapper) RequestShipment(ctx echo.Context) error {
	return w.Handler.RequestShipment(ctx)
}

// GetShipment converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	var shipmentId ShipmentId

	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &shipmentId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}

	return w.Handler.GetShipment(ctx, shipmentId)
}

// TransitionShipment converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionShipment(ctx echo.Context) error {
	var shipmentId ShipmentId

	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &shipmentId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}

	return w.Handler.TransitionShipment(ctx, shipmentId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under a path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/routes", wrapper.SearchRoutes)
	router.POST(baseURL+"/api/v1/routes", wrapper.CreateRoute)
	router.GET(baseURL+"/api/v1/routes/:routeId", wrapper.GetRoute)
	router.PATCH(baseURL+"/api/v1/routes/:routeId/status", wrapper.ChangeRouteStatus)
	router.GET(baseURL+"/api/v1/shipments", wrapper.ListShipments)
	router.POST(baseURL+"/api/v1/shipments", wrapper.RequestShipment)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId", wrapper.GetShipment)
	router.PATCH(baseURL+"/api/v1/shipments/:shipmentId/status", wrapper.TransitionShipment)
}
