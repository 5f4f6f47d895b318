// Package shipmentrepo persists shipment aggregates in PostgreSQL through GORM.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the row layout of the shipments table.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID    string    `gorm:"not null;index"`
	Description string    `gorm:"not null;default:''"`
	WeightGrams int64     `gorm:"not null;check:chk_shipments_weight,weight_grams > 0"`
	Status      int       `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;index"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		RouteID:     s.RouteID().Bytes(),
		SenderID:    s.SenderID(),
		Description: s.Description(),
		WeightGrams: s.Weight().Grams(),
		Status:      int(s.Status()),
		CreatedAt:   s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.WeightFromGrams(dto.WeightGrams)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, routeID, dto.SenderID, dto.Description, weight,
		shipment.Status(dto.Status), dto.CreatedAt.UTC())
}
