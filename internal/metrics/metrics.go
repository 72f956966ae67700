// Package metrics registers the inventory engine's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seatsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_seats_generated_total",
			Help: "Seats created by single or bulk generation",
		},
		[]string{"mode"},
	)

	seatsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_seats_skipped_total",
			Help: "Seats skipped during bulk generation because the location was occupied",
		},
	)

	seatMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_seat_mutations_total",
			Help: "Seats changed by bulk update or soft delete",
		},
		[]string{"operation"},
	)

	holdOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_hold_operations_total",
			Help: "Hold operations by outcome",
		},
		[]string{"operation", "status"},
	)

	holdsReclaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_holds_reclaimed_total",
			Help: "Expired holds cleared by the reclamation sweep",
		},
	)

	sweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_sweep_duration_seconds",
			Help:    "Duration of reclamation sweeps",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
	)
)

func SeatsGenerated(mode string, n int) {
	if n > 0 {
		seatsGenerated.WithLabelValues(mode).Add(float64(n))
	}
}

func SeatsSkipped(n int) {
	if n > 0 {
		seatsSkipped.Add(float64(n))
	}
}

func SeatsMutated(operation string, n int64) {
	if n > 0 {
		seatMutations.WithLabelValues(operation).Add(float64(n))
	}
}

// HoldOperation counts one acquire or release attempt; status is "ok",
// "contended", "not_vacant", "not_found" or "error".
func HoldOperation(operation, status string) {
	holdOperations.WithLabelValues(operation, status).Inc()
}

func HoldsReclaimed(n int64, took time.Duration) {
	if n > 0 {
		holdsReclaimed.Add(float64(n))
	}
	sweepDuration.Observe(took.Seconds())
}
