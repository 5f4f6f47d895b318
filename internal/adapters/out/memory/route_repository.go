package memory

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"
)

type RouteRepository struct {
	uow *UnitOfWork
}

func (r *RouteRepository) Add(_ context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	st, err := r.uow.current()
	if err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	if _, ok := st.routes[id]; ok {
		return errors.New("memory: route already exists")
	}

	st.routes[id] = routeRecord{
		ID:                     id,
		CarrierID:              aggregate.CarrierID(),
		Origin:                 aggregate.Origin(),
		Destination:            aggregate.Destination(),
		Departure:              aggregate.Schedule().Departure(),
		Arrival:                aggregate.Schedule().Arrival(),
		MaxWeightGrams:         aggregate.MaxWeight().Grams(),
		PricePerKg:             aggregate.PricePerKg(),
		AvailableCapacityGrams: aggregate.AvailableCapacity().Grams(),
		Status:                 int(aggregate.Status()),
	}
	return nil
}

func (r *RouteRepository) Get(_ context.Context, id kernel.UUID) (*route.Route, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}

	rec, ok := st.routes[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("routeId", id)
	}
	return rec.toDomain()
}

func (r *RouteRepository) UpdateStatus(_ context.Context, aggregate *route.Route, expected route.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	st, err := r.uow.current()
	if err != nil {
		return false, err
	}

	id := aggregate.ID().Bytes()
	rec, ok := st.routes[id]
	if !ok || rec.Status != int(expected) {
		return false, nil
	}

	rec.Status = int(aggregate.Status())
	st.routes[id] = rec
	return true, nil
}

func (r *RouteRepository) ReserveCapacity(_ context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	st, err := r.uow.current()
	if err != nil {
		return false, err
	}

	rec, ok := st.routes[id.Bytes()]
	if !ok || rec.Status != int(route.Active) || rec.AvailableCapacityGrams < amount.Grams() {
		return false, nil
	}

	rec.AvailableCapacityGrams -= amount.Grams()
	st.routes[rec.ID] = rec
	return true, nil
}

func (r *RouteRepository) ReleaseCapacity(_ context.Context, id kernel.UUID, amount kernel.Weight) (bool, error) {
	st, err := r.uow.current()
	if err != nil {
		return false, err
	}

	rec, ok := st.routes[id.Bytes()]
	if !ok {
		return false, nil
	}

	rec.AvailableCapacityGrams = min(rec.MaxWeightGrams, rec.AvailableCapacityGrams+amount.Grams())
	st.routes[rec.ID] = rec
	return true, nil
}

func (r *RouteRepository) CompleteArrivedBefore(_ context.Context, at time.Time) (int64, error) {
	st, err := r.uow.current()
	if err != nil {
		return 0, err
	}

	var completed int64
	for id, rec := range st.routes {
		if rec.Status == int(route.Active) && rec.Arrival.Before(at) {
			rec.Status = int(route.Completed)
			st.routes[id] = rec
			completed++
		}
	}
	return completed, nil
}

func (rec routeRecord) toDomain() (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(rec.ID[:])
	if err != nil {
		return nil, err
	}
	schedule, err := route.NewSchedule(rec.Departure, rec.Arrival)
	if err != nil {
		return nil, err
	}
	maxWeight, err := kernel.WeightFromGrams(rec.MaxWeightGrams)
	if err != nil {
		return nil, err
	}
	available, err := kernel.WeightFromGrams(rec.AvailableCapacityGrams)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, rec.CarrierID, rec.Origin, rec.Destination, schedule,
		maxWeight, rec.PricePerKg, available, route.Status(rec.Status))
}
