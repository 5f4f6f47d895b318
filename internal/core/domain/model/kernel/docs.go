// Package kernel provides the value objects shared by the route and shipment
// aggregates.
//
// The package includes:
//   - UUID: identifier for routes and shipments, wrapping github.com/google/uuid
//   - Weight: non-negative mass stored as whole grams, exchanged as kilograms
//
// Both types are immutable and their zero values fail validation, so domain
// code can detect values that bypassed a constructor.
package kernel
