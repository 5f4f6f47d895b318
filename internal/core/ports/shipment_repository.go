package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Shipments are never deleted.
type ShipmentRepository interface {
	// Add persists a new shipment. A reused id yields shipment.ErrShipmentAlreadyExists.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get loads a shipment by id. A missing shipment yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatus is a compare-and-set: it stores aggregate.Status() only if
	// the stored status still equals expected, and reports whether it did.
	UpdateStatus(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) (bool, error)
}
