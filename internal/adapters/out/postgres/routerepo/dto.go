// Package routerepo persists route aggregates in PostgreSQL through GORM.
//
// Capacity is never written with a plain UPDATE of the whole row. Reservations
// and releases are single conditional statements evaluated by the database,
// so the row itself is the serialization point for concurrent requests.
package routerepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is the row layout of the routes table.
type RouteDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID              string    `gorm:"not null;index"`
	Origin                 string    `gorm:"not null;index"`
	Destination            string    `gorm:"not null;index"`
	Departure              time.Time `gorm:"type:timestamptz;not null;index"`
	Arrival                time.Time `gorm:"type:timestamptz;not null"`
	MaxWeightGrams         int64     `gorm:"not null;check:chk_routes_max_weight,max_weight_grams > 0"`
	PricePerKg             float64   `gorm:"not null"`
	AvailableCapacityGrams int64     `gorm:"not null;check:chk_routes_capacity,available_capacity_grams >= 0 AND available_capacity_grams <= max_weight_grams"`
	Status                 int       `gorm:"not null;index"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:                     r.ID().Bytes(),
		CarrierID:              r.CarrierID(),
		Origin:                 r.Origin(),
		Destination:            r.Destination(),
		Departure:              r.Schedule().Departure(),
		Arrival:                r.Schedule().Arrival(),
		MaxWeightGrams:         r.MaxWeight().Grams(),
		PricePerKg:             r.PricePerKg(),
		AvailableCapacityGrams: r.AvailableCapacity().Grams(),
		Status:                 int(r.Status()),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	schedule, err := route.NewSchedule(dto.Departure, dto.Arrival)
	if err != nil {
		return nil, err
	}

	maxWeight, err := kernel.WeightFromGrams(dto.MaxWeightGrams)
	if err != nil {
		return nil, err
	}

	available, err := kernel.WeightFromGrams(dto.AvailableCapacityGrams)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.CarrierID, dto.Origin, dto.Destination, schedule,
		maxWeight, dto.PricePerKg, available, route.Status(dto.Status))
}
