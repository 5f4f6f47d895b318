// Package route models a carrier's transport offer and its weight capacity.
//
// The package includes:
//   - Route: the aggregate root holding the schedule, price and capacity bookkeeping
//   - Schedule: departure and arrival timestamps
//   - Status: the route lifecycle, Active -> Completed | Cancelled
//
// Key business rules:
//   - maxWeight and pricePerKg are positive, arrival is not before departure
//   - availableCapacity starts at maxWeight and stays within [0, maxWeight]
//   - only Active routes accept new shipment requests
//   - releasing capacity is capped at maxWeight and works in any status
package route
