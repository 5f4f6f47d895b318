package postgres

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// CapacityViolation is a route whose stored available capacity disagrees with
// its maximum weight minus the weight of its non-cancelled shipments.
// Values are raw grams as stored.
type CapacityViolation struct {
	RouteID        kernel.UUID
	MaxGrams       int64
	AvailableGrams int64
	ReservedGrams  int64
}

// ExpectedGrams is the available capacity implied by the shipments on the route.
func (v CapacityViolation) ExpectedGrams() int64 {
	return v.MaxGrams - v.ReservedGrams
}

func (v CapacityViolation) String() string {
	return fmt.Sprintf("route %s: available %dg, expected %dg (max %dg, reserved %dg)",
		v.RouteID, v.AvailableGrams, v.ExpectedGrams(), v.MaxGrams, v.ReservedGrams)
}

type capacityRow struct {
	ID        string
	MaxGrams  int64
	Available int64
	Reserved  int64
}

// CheckCapacityConservation scans every route and returns those that break
// available = max - sum(weight of non-cancelled shipments).
func CheckCapacityConservation(ctx context.Context, db *gorm.DB) ([]CapacityViolation, error) {
	var rows []capacityRow
	err := db.WithContext(ctx).Raw(`
		SELECT r.id,
		       r.max_weight_grams AS max_grams,
		       r.available_capacity_grams AS available,
		       COALESCE(SUM(s.weight_grams) FILTER (WHERE s.status <> ?), 0) AS reserved
		FROM routes AS r
		LEFT JOIN shipments AS s ON s.route_id = r.id
		GROUP BY r.id, r.max_weight_grams, r.available_capacity_grams
		HAVING r.available_capacity_grams <>
		       r.max_weight_grams - COALESCE(SUM(s.weight_grams) FILTER (WHERE s.status <> ?), 0)
		ORDER BY r.id`, int(shipment.Cancelled), int(shipment.Cancelled)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	violations := make([]CapacityViolation, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromString(row.ID)
		if err != nil {
			return nil, err
		}
		violations = append(violations, CapacityViolation{
			RouteID:        id,
			MaxGrams:       row.MaxGrams,
			AvailableGrams: row.Available,
			ReservedGrams:  row.Reserved,
		})
	}
	return violations, nil
}
