// Package services provides domain services that coordinate work no single
// aggregate can do alone.
//
// The package includes:
//   - CapacityLedger: grants and releases route capacity against the stored
//     value, so concurrent requests can never oversell a route
//
// Services are stateless. Every call receives the transaction-bound store it
// must work through, which keeps a command's reads and writes in one unit of work.
package services
