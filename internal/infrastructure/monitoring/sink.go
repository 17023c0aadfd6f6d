package monitoring

import (
	"time"

	"github.com/pulseapm/pulse-go/internal/trace"
)

// instrumentedSink decorates a capture sink with metrics.
type instrumentedSink struct {
	next    trace.Sink
	metrics *Metrics
}

// InstrumentSink wraps next so every capture updates metrics. The wrapped
// sink keeps next's synchronous contract.
func InstrumentSink(next trace.Sink, metrics *Metrics) trace.Sink {
	return &instrumentedSink{next: next, metrics: metrics}
}

// CaptureTransaction records metrics around the inner handoff.
func (s *instrumentedSink) CaptureTransaction(event *trace.Event) {
	start := time.Now()
	s.next.CaptureTransaction(event)
	s.metrics.CaptureDuration.Observe(time.Since(start).Seconds())

	s.metrics.TransactionsCaptured.Inc()
	s.metrics.SpansCaptured.Add(float64(len(event.Spans)))
	if event.DroppedSpans > 0 {
		s.metrics.SpansDropped.Add(float64(event.DroppedSpans))
	}
}
