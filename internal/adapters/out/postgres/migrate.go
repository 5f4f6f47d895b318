package postgres

import (
	"shipping/internal/adapters/out/postgres/routerepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{&routerepo.RouteDTO{}, &shipmentrepo.ShipmentDTO{}}
}

// Migrate creates or alters the tables, indexes and check constraints for
// every persisted DTO.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
