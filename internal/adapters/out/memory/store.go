// Package memory is an in-process implementation of the persistence ports.
//
// A Store holds committed state. Each UnitOfWork takes the store-wide lock in
// Begin, stages its changes on a private copy of the state and swaps the copy
// in on Commit, so units of work are fully serialized and a rollback simply
// drops the copy. It backs tests and local runs that do not need PostgreSQL.
package memory

import (
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errNoTransaction = errors.New("memory: no active transaction")

type routeRecord struct {
	ID                     uuid.UUID
	CarrierID              string
	Origin                 string
	Destination            string
	Departure              time.Time
	Arrival                time.Time
	MaxWeightGrams         int64
	PricePerKg             float64
	AvailableCapacityGrams int64
	Status                 int
}

type shipmentRecord struct {
	ID          uuid.UUID
	RouteID     uuid.UUID
	SenderID    string
	Description string
	WeightGrams int64
	Status      int
	CreatedAt   time.Time
}

type state struct {
	routes    map[uuid.UUID]routeRecord
	shipments map[uuid.UUID]shipmentRecord
}

func newState() *state {
	return &state{
		routes:    map[uuid.UUID]routeRecord{},
		shipments: map[uuid.UUID]shipmentRecord{},
	}
}

// records are plain values, so a shallow map copy is a full copy
func (s *state) clone() *state {
	return &state{
		routes:    maps.Clone(s.routes),
		shipments: maps.Clone(s.shipments),
	}
}

// Store is the committed state shared by every unit of work it creates.
type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// NewUnitOfWorkFactory returns a factory whose units of work share s.
func (s *Store) NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: s}
}
