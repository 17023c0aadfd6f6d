package trace

import (
	"sync"
	"sync/atomic"
)

// DefaultMaxSpans bounds a trace's recorded span count when no explicit
// capacity is configured.
const DefaultMaxSpans = 1000

// SpanRecorder is the bounded, order-preserving registry of a trace's
// spans. The owning transaction creates it; every descendant span holds a
// reference so it can register itself. Safe for concurrent use.
type SpanRecorder struct {
	mu       sync.Mutex
	spans    []*Span
	maxSpans int
	dropped  atomic.Int64
}

// NewSpanRecorder creates a recorder holding at most maxSpans entries.
// A non-positive capacity falls back to DefaultMaxSpans.
func NewSpanRecorder(maxSpans int) *SpanRecorder {
	if maxSpans <= 0 {
		maxSpans = DefaultMaxSpans
	}
	return &SpanRecorder{
		spans:    make([]*Span, 0, 8),
		maxSpans: maxSpans,
	}
}

// Add appends span if the recorder has room and reports whether it was
// retained. The capacity check and the append are one atomic step, so the
// first N spans win even under concurrent registration. Beyond capacity
// Add is a silent no-op: the span itself stays fully usable, it just will
// not appear in the reported trace.
func (r *SpanRecorder) Add(span *Span) bool {
	r.mu.Lock()
	if len(r.spans) >= r.maxSpans {
		r.mu.Unlock()
		r.dropped.Add(1)
		return false
	}
	r.spans = append(r.spans, span)
	r.mu.Unlock()
	return true
}

// Spans returns a snapshot of the recorded spans in insertion order.
func (r *SpanRecorder) Spans() []*Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Span, len(r.spans))
	copy(out, r.spans)
	return out
}

// Len returns the number of recorded spans.
func (r *SpanRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spans)
}

// Dropped returns how many Add calls were refused for capacity. Purely
// diagnostic; overflow is policy, not an error.
func (r *SpanRecorder) Dropped() int64 {
	return r.dropped.Load()
}
