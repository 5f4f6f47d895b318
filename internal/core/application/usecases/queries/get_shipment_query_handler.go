package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_id,
			sender_id,
			description,
			weight_grams,
			status,
			created_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentView{}, err
		}
		return ShipmentView{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	return scanShipment(rows)
}
