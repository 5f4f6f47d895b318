package cmd

import (
	"shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() *commands.CreateRouteCommandHandler {
	h := commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeRouteStatusCommandHandler() *commands.ChangeRouteStatusCommandHandler {
	h := commands.NewChangeRouteStatusCommandHandler(c.routeUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCompleteArrivedRoutesCommandHandler() *commands.CompleteArrivedRoutesCommandHandler {
	h := commands.NewCompleteArrivedRoutesCommandHandler(c.routeUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRequestShipmentCommandHandler() *commands.RequestShipmentCommandHandler {
	h := commands.NewRequestShipmentCommandHandler(c.shipmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() *commands.TransitionShipmentCommandHandler {
	h := commands.NewTransitionShipmentCommandHandler(c.shipmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSearchRoutesQueryHandler() queries.SearchRoutesQueryHandler {
	return queries.NewSearchRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the API server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateRoute:        c.CreateCreateRouteCommandHandler(),
		ChangeRouteStatus:  c.CreateChangeRouteStatusCommandHandler(),
		RequestShipment:    c.CreateRequestShipmentCommandHandler(),
		TransitionShipment: c.CreateTransitionShipmentCommandHandler(),
		SearchRoutes:       c.CreateSearchRoutesQueryHandler(),
		GetRoute:           c.CreateGetRouteQueryHandler(),
		GetShipment:        c.CreateGetShipmentQueryHandler(),
		ListShipments:      c.CreateListShipmentsQueryHandler(),
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
