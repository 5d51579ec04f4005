// Package metrics defines the Prometheus instruments for card creation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks card creation outcomes and latency.
type Metrics struct {
	CardsCreated   prometheus.Counter
	CardsRejected  *prometheus.CounterVec
	CardsFailed    prometheus.Counter
	CreateDuration prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CardsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "cards_created_total",
			Help: "Total number of cards issued",
		}),
		CardsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cards_rejected_total",
			Help: "Total number of card requests rejected by validation, by first invalid field",
		}, []string{"field"}),
		CardsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cards_failed_total",
			Help: "Total number of card requests that failed with a system error",
		}),
		CreateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cards_create_duration_seconds",
			Help:    "Duration of card creation requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCreated records a successfully issued card.
func (m *Metrics) IncrementCreated() {
	m.CardsCreated.Inc()
}

// IncrementRejected records a request rejected on field.
func (m *Metrics) IncrementRejected(field string) {
	m.CardsRejected.WithLabelValues(field).Inc()
}

// IncrementFailed records a request that failed with a system error.
func (m *Metrics) IncrementFailed() {
	m.CardsFailed.Inc()
}

// ObserveCreate records the duration of a create request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveCreate(start time.Time) {
	m.CreateDuration.Observe(time.Since(start).Seconds())
}
