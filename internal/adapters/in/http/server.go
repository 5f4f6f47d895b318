// Package http exposes the shipping use cases over a JSON API.
//
// Handlers translate wire types from internal/generated/servers into
// commands and queries, call the matching handler and translate the result
// back. They never reach the domain or the persistence layer directly.
package http

import (
	"context"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type (
	CreateRouteHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error)
	}
	ChangeRouteStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeRouteStatusCommand) (*route.Route, error)
	}
	RequestShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.RequestShipmentCommand) (*shipment.Shipment, error)
	}
	TransitionShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionShipmentCommand) (*shipment.Shipment, error)
	}
	SearchRoutesHandler interface {
		Handle(ctx context.Context, query queries.SearchRoutesQuery) ([]queries.RouteView, error)
	}
	GetRouteHandler interface {
		Handle(ctx context.Context, query queries.GetRouteQuery) (queries.RouteView, error)
	}
	GetShipmentHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.ShipmentView, error)
	}
	ListShipmentsHandler interface {
		Handle(ctx context.Context, query queries.ListShipmentsQuery) ([]queries.ShipmentView, error)
	}
)

// Handlers groups the use cases served by Server.
type Handlers struct {
	CreateRoute        CreateRouteHandler
	ChangeRouteStatus  ChangeRouteStatusHandler
	RequestShipment    RequestShipmentHandler
	TransitionShipment TransitionShipmentHandler

	SearchRoutes  SearchRoutesHandler
	GetRoute      GetRouteHandler
	GetShipment   GetShipmentHandler
	ListShipments ListShipmentsHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// SearchRoutes handles GET /api/v1/routes.
func (s *Server) SearchRoutes(ctx echo.Context, params servers.SearchRoutesParams) error {
	query, err := queries.NewSearchRoutesQuery(
		deref(params.Origin), deref(params.Destination), params.FromDate, params.ToDate)
	if err != nil {
		return writeError(ctx, err)
	}

	routes, err := s.h.SearchRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Route, len(routes))
	for i, v := range routes {
		response[i] = routeViewToWire(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body servers.CreateRouteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	routeID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernel.UUIDFromBytes(body.Id[:])
		if err != nil {
			return writeError(ctx, err)
		}
		routeID = id
	}

	cmd, err := commands.NewCreateRouteCommand(routeID, body.CarrierId, body.Origin, body.Destination,
		body.DepartureTime, body.ArrivalTime, body.MaxWeight, body.PricePerKg)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.h.CreateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, routeToWire(r))
}

// GetRoute handles GET /api/v1/routes/{routeId}.
func (s *Server) GetRoute(ctx echo.Context, routeId servers.RouteId) error {
	id, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	v, err := s.h.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeViewToWire(v))
}

// ChangeRouteStatus handles PATCH /api/v1/routes/{routeId}/status.
func (s *Server) ChangeRouteStatus(ctx echo.Context, routeId servers.RouteId) error {
	var body servers.ChangeRouteStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	status, err := route.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewChangeRouteStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.h.ChangeRouteStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeToWire(r))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	var status *shipment.Status
	if params.Status != nil {
		st, err := shipment.ParseStatus(string(*params.Status))
		if err != nil {
			return writeError(ctx, err)
		}
		status = &st
	}

	query, err := queries.NewListShipmentsQuery(deref(params.UserId), status)
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.h.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Shipment, len(shipments))
	for i, v := range shipments {
		response[i] = shipmentViewToWire(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RequestShipment handles POST /api/v1/shipments.
func (s *Server) RequestShipment(ctx echo.Context) error {
	var body servers.RequestShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernel.UUIDFromBytes(body.Id[:])
		if err != nil {
			return writeError(ctx, err)
		}
		shipmentID = id
	}
	routeID, err := kernel.UUIDFromBytes(body.RouteId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRequestShipmentCommand(shipmentID, routeID, body.SenderId,
		deref(body.Description), body.Weight)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.h.RequestShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToWire(created))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context, shipmentId servers.ShipmentId) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	v, err := s.h.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentViewToWire(v))
}

// TransitionShipment handles PATCH /api/v1/shipments/{shipmentId}/status.
func (s *Server) TransitionShipment(ctx echo.Context, shipmentId servers.ShipmentId) error {
	var body servers.TransitionShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	status, err := shipment.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewTransitionShipmentCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.TransitionShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToWire(updated))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
