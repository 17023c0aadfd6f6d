package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the capture path.
type Metrics struct {
	// Capture metrics
	TransactionsCaptured prometheus.Counter
	SpansCaptured        prometheus.Counter
	SpansDropped         prometheus.Counter
	CaptureDuration      prometheus.Histogram
}

// NewMetrics creates a metrics collector registered with reg. A nil
// registerer falls back to the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsCaptured: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pulse_transactions_captured_total",
				Help: "Total number of finished transactions handed to the sink",
			},
		),
		SpansCaptured: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pulse_spans_captured_total",
				Help: "Total number of child spans included in captured payloads",
			},
		),
		SpansDropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pulse_spans_dropped_total",
				Help: "Total number of spans refused by recorders for capacity",
			},
		),
		CaptureDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pulse_capture_duration_seconds",
				Help:    "Synchronous sink handoff duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
	}
}
