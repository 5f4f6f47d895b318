// Package metrics holds the service's Prometheus collectors and the registry
// the /metrics endpoint serves.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "shipping"

// Outcome labels for ledger operations.
const (
	OutcomeOK               = "ok"
	OutcomeNotFound         = "not_found"
	OutcomeRouteNotActive   = "route_not_active"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeInvalid          = "invalid"
	OutcomeError            = "error"
)

// Registry is the registry exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	reservationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reservations_total",
			Help:      "Count of capacity reservations by outcome.",
		},
		[]string{"outcome"},
	)
	releasedGrams = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "released_grams_total",
			Help:      "Grams of capacity returned to routes by cancellations.",
		},
	)
	transitionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shipment",
			Name:      "transitions_total",
			Help:      "Count of shipment status transitions by target status and outcome.",
		},
		[]string{"to", "outcome"},
	)
	completedRoutes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "auto_completed_total",
			Help:      "Count of routes completed by the arrival job.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of HTTP requests by method, route and status code.",
		},
		[]string{"method", "path", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

var registerMetrics sync.Once

// Register adds every collector to Registry. It is safe to call more than once.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			reservationCounter,
			releasedGrams,
			transitionCounter,
			completedRoutes,
			httpRequests,
			httpDuration,
		)
	})
}

// RecordReservation counts one reservation attempt.
func RecordReservation(outcome string) {
	reservationCounter.WithLabelValues(outcome).Inc()
}

// RecordRelease adds the grams returned to a route.
func RecordRelease(grams int64) {
	releasedGrams.Add(float64(grams))
}

// RecordTransition counts one shipment status change attempt.
func RecordTransition(to, outcome string) {
	transitionCounter.WithLabelValues(to, outcome).Inc()
}

// RecordCompletedRoutes adds the routes closed by one job run.
func RecordCompletedRoutes(n int64) {
	completedRoutes.Add(float64(n))
}

// RecordHTTPRequest observes one served request. path is the route template, not the raw URL.
func RecordHTTPRequest(method, path string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
