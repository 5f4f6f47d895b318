package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle returns an errs.ObjectNotFoundError when no route has the id.
func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+routeColumns+` FROM routes WHERE id = ?`,
		query.RouteID().Bytes(),
	).Rows()
	if err != nil {
		return RouteView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RouteView{}, err
		}
		return RouteView{}, errs.NewObjectNotFoundError("routeId", query.RouteID())
	}

	return scanRoute(rows)
}
