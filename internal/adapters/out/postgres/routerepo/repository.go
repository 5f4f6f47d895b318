package routerepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new route row.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a route by id.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes the aggregate's status if the row still holds expected.
func (r *GormRouteRepository) UpdateStatus(ctx context.Context, aggregate *route.Route, expected route.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(expected)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// ReserveCapacity runs
//
//	UPDATE routes SET available_capacity_grams = available_capacity_grams - $amount
//	WHERE id = $id AND status = active AND available_capacity_grams >= $amount
//
// and reports whether a row matched.
func (r *GormRouteRepository) ReserveCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	if err := errors.Join(id.Validate(), amount.Validate()); err != nil {
		return false, err
	}

	grams := amount.Grams()
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ? AND status = ? AND available_capacity_grams >= ?", id.Bytes(), int(route.Active), grams).
		Update("available_capacity_grams", gorm.Expr("available_capacity_grams - ?", grams))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ReleaseCapacity credits amount back, capped at max_weight_grams, whatever
// the route status.
func (r *GormRouteRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	if err := errors.Join(id.Validate(), amount.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", id.Bytes()).
		Update("available_capacity_grams",
			gorm.Expr("LEAST(max_weight_grams, available_capacity_grams + ?)", amount.Grams()))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// CompleteArrivedBefore completes every active route with arrival < at.
func (r *GormRouteRepository) CompleteArrivedBefore(ctx context.Context, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("status = ? AND arrival < ?", int(route.Active), at).
		Update("status", int(route.Completed))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
