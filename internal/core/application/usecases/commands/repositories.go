// Package commands contains the operations that change the state of routes
// and shipments. Every command follows the same pattern: validate, open a
// unit of work, act through the domain, commit. Any error rolls back every
// change made by the command.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RouteRepoFactory provides the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ShipmentRepoFactory provides the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// RouteUoW manages transactions for route-only commands.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW manages transactions that touch both routes and shipments, such as
	// reserving capacity and creating the shipment that holds it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   routes := uow.RouteRepository()
	//   shipments := uow.ShipmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RouteRepoFactory
		ShipmentRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate commands.
	UoWFactory interface {
		Create() UoW
	}
)
