// Package metrics defines the prometheus collectors exported by the calculator app.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Adjustments     *prometheus.CounterVec
	Resets          prometheus.Counter
	StoreOps        *prometheus.CounterVec
	StoreOpDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tipcalc_adjustments_total",
			Help: "Field adjustments applied from button input",
		}, []string{"field", "direction"}),

		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tipcalc_resets_total",
			Help: "Resets to the default bill, tip and splitting",
		}),

		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tipcalc_store_ops_total",
			Help: "Persistent store operations by outcome",
		}, []string{"op", "result"}),

		StoreOpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tipcalc_store_op_duration_seconds",
			Help:    "Persistent store operation latency",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"op"}),
	}

	reg.MustRegister(
		m.Adjustments,
		m.Resets,
		m.StoreOps,
		m.StoreOpDuration,
	)

	return m
}

// ObserveAdjustment counts one applied step. Zero deltas are skipped.
func (m *Metrics) ObserveAdjustment(field string, delta int) {
	switch {
	case delta > 0:
		m.Adjustments.WithLabelValues(field, "up").Inc()
	case delta < 0:
		m.Adjustments.WithLabelValues(field, "down").Inc()
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
