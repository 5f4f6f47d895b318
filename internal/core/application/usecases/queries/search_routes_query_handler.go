package queries

import (
	"context"

	"shipping/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// SearchRoutesQueryHandler reads active routes straight from the routes table.
type SearchRoutesQueryHandler struct {
	db *gorm.DB
}

func NewSearchRoutesQueryHandler(db *gorm.DB) SearchRoutesQueryHandler {
	return SearchRoutesQueryHandler{db: db}
}

// Handle returns matching active routes ordered by departure, then id.
func (h SearchRoutesQueryHandler) Handle(ctx context.Context, query SearchRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("routes").
		Select(routeColumns).
		Where("status = ?", int(route.Active))
	if query.Origin() != "" {
		tx = tx.Where("origin ILIKE ?", containsPattern(query.Origin()))
	}
	if query.Destination() != "" {
		tx = tx.Where("destination ILIKE ?", containsPattern(query.Destination()))
	}
	if from := query.FromDate(); from != nil {
		tx = tx.Where("departure >= ?", *from)
	}
	if to := query.ToDate(); to != nil {
		tx = tx.Where("departure <= ?", *to)
	}

	rows, err := tx.Order("departure, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteView, 0)
	for rows.Next() {
		v, scanErr := scanRoute(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		routes = append(routes, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
