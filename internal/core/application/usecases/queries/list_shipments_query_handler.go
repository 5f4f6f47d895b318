package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle returns shipments ordered by creation time, oldest first.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("shipments AS s").
		Select("s.id, s.route_id, s.sender_id, s.description, s.weight_grams, s.status, s.created_at").
		Joins("JOIN routes AS r ON r.id = s.route_id")
	if user := query.UserID(); user != "" {
		tx = tx.Where("(s.sender_id = ? OR r.carrier_id = ?)", user, user)
	}
	if st := query.Status(); st != nil {
		tx = tx.Where("s.status = ?", int(*st))
	}

	rows, err := tx.Order("s.created_at, s.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentView, 0)
	for rows.Next() {
		v, scanErr := scanShipment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
