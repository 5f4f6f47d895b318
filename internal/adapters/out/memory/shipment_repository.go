package memory

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

type ShipmentRepository struct {
	uow *UnitOfWork
}

func (r *ShipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	st, err := r.uow.current()
	if err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	if _, ok := st.shipments[id]; ok {
		return shipment.ErrShipmentAlreadyExists
	}

	st.shipments[id] = shipmentRecord{
		ID:          id,
		RouteID:     aggregate.RouteID().Bytes(),
		SenderID:    aggregate.SenderID(),
		Description: aggregate.Description(),
		WeightGrams: aggregate.Weight().Grams(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}
	return nil
}

func (r *ShipmentRepository) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}

	rec, ok := st.shipments[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}
	return rec.toDomain()
}

func (r *ShipmentRepository) UpdateStatus(
	_ context.Context,
	aggregate *shipment.Shipment,
	expected shipment.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	st, err := r.uow.current()
	if err != nil {
		return false, err
	}

	id := aggregate.ID().Bytes()
	rec, ok := st.shipments[id]
	if !ok || rec.Status != int(expected) {
		return false, nil
	}

	rec.Status = int(aggregate.Status())
	st.shipments[id] = rec
	return true, nil
}

func (rec shipmentRecord) toDomain() (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(rec.ID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(rec.RouteID[:])
	if err != nil {
		return nil, err
	}
	weight, err := kernel.WeightFromGrams(rec.WeightGrams)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, routeID, rec.SenderID, rec.Description,
		weight, shipment.Status(rec.Status), rec.CreatedAt)
}
