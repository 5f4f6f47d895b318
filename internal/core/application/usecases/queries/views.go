package queries

import (
	"database/sql"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// RouteView is the read model of a route.
type RouteView struct {
	ID                kernel.UUID
	CarrierID         string
	Origin            string
	Destination       string
	Departure         time.Time
	Arrival           time.Time
	MaxWeight         kernel.Weight
	AvailableCapacity kernel.Weight
	PricePerKg        float64
	Status            route.Status
}

// ShipmentView is the read model of a shipment.
type ShipmentView struct {
	ID          kernel.UUID
	RouteID     kernel.UUID
	SenderID    string
	Description string
	Weight      kernel.Weight
	Status      shipment.Status
	CreatedAt   time.Time
}

const routeColumns = `id, carrier_id, origin, destination, departure, arrival,
	max_weight_grams, available_capacity_grams, price_per_kg, status`

func scanRoute(rows *sql.Rows) (RouteView, error) {
	var (
		v                        RouteView
		id                       uuid.UUID
		maxGrams, availableGrams int64
		status                   int
	)
	if err := rows.Scan(
		&id,
		&v.CarrierID,
		&v.Origin,
		&v.Destination,
		&v.Departure,
		&v.Arrival,
		&maxGrams,
		&availableGrams,
		&v.PricePerKg,
		&status,
	); err != nil {
		return RouteView{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteView{}, err
	}
	v.ID = routeID

	if v.MaxWeight, err = kernel.WeightFromGrams(maxGrams); err != nil {
		return RouteView{}, err
	}
	if v.AvailableCapacity, err = kernel.WeightFromGrams(availableGrams); err != nil {
		return RouteView{}, err
	}

	v.Departure = v.Departure.UTC()
	v.Arrival = v.Arrival.UTC()
	v.Status = route.Status(status)
	return v, nil
}

func scanShipment(rows *sql.Rows) (ShipmentView, error) {
	var (
		v           ShipmentView
		id, routeID uuid.UUID
		grams       int64
		status      int
	)
	if err := rows.Scan(
		&id,
		&routeID,
		&v.SenderID,
		&v.Description,
		&grams,
		&status,
		&v.CreatedAt,
	); err != nil {
		return ShipmentView{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentView{}, err
	}
	v.ID = shipmentID

	if v.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
		return ShipmentView{}, err
	}
	if v.Weight, err = kernel.WeightFromGrams(grams); err != nil {
		return ShipmentView{}, err
	}

	v.CreatedAt = v.CreatedAt.UTC()
	v.Status = shipment.Status(status)
	return v, nil
}

// containsPattern turns free text into an ILIKE substring pattern with the
// wildcard characters escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
