// Package shipment implements the shipment lifecycle: the Shipment aggregate
// and its closed status state machine.
//
// The package includes:
//   - Shipment: the aggregate root holding the package weight and current status
//   - Status: the state machine pending -> accepted -> in_transit -> delivered,
//     with pending -> cancelled as the only early exit
//
// Key business rules:
//   - weight is positive and fixed at creation
//   - every status change must be an edge of the state machine; anything else
//     fails with ErrInvalidTransition naming both statuses
//   - delivered and cancelled are terminal
//   - a cancellation from pending or accepted returns the weight to the route
//
// The package never touches route capacity itself. The application layer
// pairs shipment transitions with the capacity ledger inside one unit of work.
package shipment
