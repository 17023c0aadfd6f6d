package trace

import (
	"encoding/json"
	"time"

	"github.com/pulseapm/pulse-go/internal/shared/id"
)

// TraceContext is the trace sub-record embedded in a captured event and in
// any payload that wants to reference a span. Zero-valued fields are
// absent and never serialized.
type TraceContext struct {
	TraceID      id.TraceID `json:"trace_id,omitempty"`
	SpanID       id.SpanID  `json:"span_id,omitempty"`
	ParentSpanID id.SpanID  `json:"parent_span_id,omitempty"`
	Op           string     `json:"op,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// timestamp renders t as fractional seconds since the epoch, the wire
// representation of every time in a payload.
func timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// spanWire is the external shape of a span. Every absent attribute is
// omitted outright, never emitted as a null or empty placeholder;
// downstream payload-size accounting depends on that.
type spanWire struct {
	TraceID        id.TraceID        `json:"trace_id"`
	SpanID         id.SpanID         `json:"span_id"`
	ParentSpanID   id.SpanID         `json:"parent_span_id,omitempty"`
	Op             string            `json:"op,omitempty"`
	Description    string            `json:"description,omitempty"`
	Status         string            `json:"status,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
	Data           map[string]any    `json:"data,omitempty"`
	StartTimestamp float64           `json:"start_timestamp"`
	Timestamp      *float64          `json:"timestamp,omitempty"`
}

// MarshalJSON renders the span's wire record.
func (s *Span) MarshalJSON() ([]byte, error) {
	w := spanWire{
		TraceID:        s.TraceID,
		SpanID:         s.SpanID,
		ParentSpanID:   s.ParentSpanID,
		Op:             s.Op,
		Description:    s.Description,
		Status:         s.Status.String(),
		Tags:           s.Tags,
		StartTimestamp: timestamp(s.StartTime),
	}
	if len(s.Data) > 0 {
		w.Data = make(map[string]any, len(s.Data))
		for k, v := range s.Data {
			w.Data[k] = v.Interface()
		}
	}
	if !s.EndTime.IsZero() {
		end := timestamp(s.EndTime)
		w.Timestamp = &end
	}
	return json.Marshal(w)
}

// Event is the finished-trace payload a transaction hands to its sink.
type Event struct {
	EventID   id.EventID
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Trace     TraceContext
	Spans     []*Span

	// DroppedSpans counts children refused by the recorder for capacity.
	// Diagnostic only; never serialized.
	DroppedSpans int64
}

type eventWire struct {
	EventID        id.EventID     `json:"event_id"`
	Type           string         `json:"type"`
	Transaction    string         `json:"transaction"`
	Contexts       map[string]any `json:"contexts"`
	Spans          []*Span        `json:"spans"`
	StartTimestamp float64        `json:"start_timestamp"`
	Timestamp      *float64       `json:"timestamp,omitempty"`
}

// MarshalJSON renders the transaction payload: own timing and name, the
// trace context, and the recorded child spans.
func (e *Event) MarshalJSON() ([]byte, error) {
	w := eventWire{
		EventID:        e.EventID,
		Type:           "transaction",
		Transaction:    e.Name,
		Contexts:       map[string]any{"trace": e.Trace},
		Spans:          e.Spans,
		StartTimestamp: timestamp(e.StartTime),
	}
	if w.Spans == nil {
		w.Spans = []*Span{}
	}
	if !e.EndTime.IsZero() {
		end := timestamp(e.EndTime)
		w.Timestamp = &end
	}
	return json.Marshal(w)
}
