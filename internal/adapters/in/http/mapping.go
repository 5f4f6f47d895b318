package http

import (
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/generated/servers"
)

func routeToWire(r *route.Route) servers.Route {
	return servers.Route{
		Id:                r.ID().Bytes(),
		CarrierId:         r.CarrierID(),
		Origin:            r.Origin(),
		Destination:       r.Destination(),
		DepartureTime:     r.Schedule().Departure(),
		ArrivalTime:       r.Schedule().Arrival(),
		MaxWeight:         r.MaxWeight().Kilograms(),
		AvailableCapacity: r.AvailableCapacity().Kilograms(),
		PricePerKg:        r.PricePerKg(),
		Status:            servers.RouteStatus(r.Status().String()),
	}
}

func routeViewToWire(v queries.RouteView) servers.Route {
	return servers.Route{
		Id:                v.ID.Bytes(),
		CarrierId:         v.CarrierID,
		Origin:            v.Origin,
		Destination:       v.Destination,
		DepartureTime:     v.Departure,
		ArrivalTime:       v.Arrival,
		MaxWeight:         v.MaxWeight.Kilograms(),
		AvailableCapacity: v.AvailableCapacity.Kilograms(),
		PricePerKg:        v.PricePerKg,
		Status:            servers.RouteStatus(v.Status.String()),
	}
}

func shipmentToWire(s *shipment.Shipment) servers.Shipment {
	return servers.Shipment{
		Id:          s.ID().Bytes(),
		RouteId:     s.RouteID().Bytes(),
		SenderId:    s.SenderID(),
		Description: s.Description(),
		Weight:      s.Weight().Kilograms(),
		Status:      servers.ShipmentStatus(s.Status().String()),
		CreatedAt:   s.CreatedAt(),
	}
}

func shipmentViewToWire(v queries.ShipmentView) servers.Shipment {
	return servers.Shipment{
		Id:          v.ID.Bytes(),
		RouteId:     v.RouteID.Bytes(),
		SenderId:    v.SenderID,
		Description: v.Description,
		Weight:      v.Weight.Kilograms(),
		Status:      servers.ShipmentStatus(v.Status.String()),
		CreatedAt:   v.CreatedAt,
	}
}
