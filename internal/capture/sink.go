package capture

import (
	"sync"

	"go.uber.org/zap"

	"github.com/pulseapm/pulse-go/internal/infrastructure/logging"
	"github.com/pulseapm/pulse-go/internal/trace"
)

// LogSink is the smallest real sink: it logs a one-line summary of every
// captured transaction. Useful on its own in development and as the tail
// of a sink chain in production.
type LogSink struct {
	logger *logging.Logger
}

// NewLogSink creates a sink writing through logger.
func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogSink{logger: logger}
}

// CaptureTransaction logs the transaction summary.
func (s *LogSink) CaptureTransaction(event *trace.Event) {
	log := s.logger.WithTrace(event.Trace.TraceID, event.Trace.SpanID)
	fields := []zap.Field{
		zap.String("event_id", event.EventID.String()),
		zap.String("transaction", event.Name),
		zap.Int("spans", len(event.Spans)),
		zap.Float64("duration_seconds", event.EndTime.Sub(event.StartTime).Seconds()),
	}
	if event.DroppedSpans > 0 {
		fields = append(fields, zap.Int64("dropped_spans", event.DroppedSpans))
		log.Warn("transaction captured with dropped spans", fields...)
		return
	}
	log.Info("transaction captured", fields...)
}

// RecorderSink retains every captured event in memory, in arrival order.
// Intended for tests and local inspection. Safe for concurrent use.
type RecorderSink struct {
	mu     sync.Mutex
	events []*trace.Event
}

// NewRecorderSink creates an empty recorder sink.
func NewRecorderSink() *RecorderSink {
	return &RecorderSink{}
}

// CaptureTransaction retains the event.
func (s *RecorderSink) CaptureTransaction(event *trace.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a snapshot of the captured events.
func (s *RecorderSink) Events() []*trace.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*trace.Event, len(s.events))
	copy(out, s.events)
	return out
}
