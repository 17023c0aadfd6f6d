package trace

import (
	"strconv"
	"time"

	"github.com/pulseapm/pulse-go/internal/shared/id"
)

// TagHTTPStatusCode is the tag key under which SetHTTPStatus records the
// raw numeric response code.
const TagHTTPStatusCode = "http.status_code"

// SpanFilter is the predicate an instrumentation adapter consults before
// starting a span for an outgoing request. The core never calls it; it is
// declared here so adapters and hosts share one signature.
type SpanFilter func(url string) bool

// Span is one timed unit of work within a trace.
//
// A span expects a single logical owner: its fields carry no locking. The
// recorder it registers children with is safe for concurrent use, so
// StartChild may be called from multiple goroutines; mutating one span's
// tags or data concurrently is not supported.
type Span struct {
	TraceID      id.TraceID
	SpanID       id.SpanID
	ParentSpanID id.SpanID
	Sampled      Sampled
	Op           string
	Description  string
	Status       SpanStatus
	Tags         map[string]string
	Data         map[string]Value
	StartTime    time.Time
	EndTime      time.Time

	// recorder is shared by every span of a sampled trace; nil when the
	// trace is unsampled.
	recorder *SpanRecorder
}

// SpanOptions configures a new span. Identifier fields left empty are
// freshly generated. Identifiers are treated as opaque strings; no format
// validation happens here.
type SpanOptions struct {
	TraceID      id.TraceID
	SpanID       id.SpanID
	ParentSpanID id.SpanID
	Sampled      Sampled
	Op           string
	Description  string
	Status       SpanStatus
	Tags         map[string]string
	Data         map[string]Value
	StartTime    time.Time
}

// NewSpan creates a standalone span from opts. Construction never fails.
func NewSpan(opts SpanOptions) *Span {
	s := &Span{
		TraceID:      opts.TraceID,
		SpanID:       opts.SpanID,
		ParentSpanID: opts.ParentSpanID,
		Sampled:      opts.Sampled,
		Op:           opts.Op,
		Description:  opts.Description,
		Status:       opts.Status,
		StartTime:    opts.StartTime,
	}
	if s.TraceID == "" {
		s.TraceID = id.NewTraceID()
	}
	if s.SpanID == "" {
		s.SpanID = id.NewSpanID()
	}
	if s.StartTime.IsZero() {
		s.StartTime = time.Now()
	}
	for k, v := range opts.Tags {
		s.SetTag(k, v)
	}
	for k, v := range opts.Data {
		s.SetData(k, v)
	}
	return s
}

// StartChild creates a child span of s. The child keeps the parent's trace
// ID and sampling decision, points its parent link at s, and registers
// itself with the trace's recorder when one exists. Trace lineage fields in
// opts are ignored; they always come from the parent.
func (s *Span) StartChild(opts SpanOptions) *Span {
	opts.TraceID = s.TraceID
	opts.SpanID = ""
	opts.ParentSpanID = s.SpanID
	opts.Sampled = s.Sampled

	child := NewSpan(opts)
	child.recorder = s.recorder
	if s.recorder != nil {
		s.recorder.Add(child)
	}
	return child
}

// SetTag records a tag; setting the same key again overwrites.
func (s *Span) SetTag(key, value string) {
	if s.Tags == nil {
		s.Tags = make(map[string]string)
	}
	s.Tags[key] = value
}

// SetData records a data value; setting the same key again overwrites.
// Storing Null is valid and distinct from never setting the key.
func (s *Span) SetData(key string, value Value) {
	if s.Data == nil {
		s.Data = make(map[string]Value)
	}
	s.Data[key] = value
}

// SetStatus overwrites the span's outcome status.
func (s *Span) SetStatus(status SpanStatus) {
	s.Status = status
}

// SetHTTPStatus derives the outcome status from an HTTP response code and
// records the raw code under the http.status_code tag.
func (s *Span) SetHTTPStatus(code int) {
	s.SetStatus(StatusFromHTTP(code))
	s.SetTag(TagHTTPStatusCode, strconv.Itoa(code))
}

// IsSuccess reports whether the status is exactly Ok. An unset status is
// not a success.
func (s *Span) IsSuccess() bool {
	return s.Status == StatusOk
}

// Finish stamps the end time with the current clock. The first finish
// wins; later calls are no-ops.
func (s *Span) Finish() {
	s.FinishWithTime(time.Now())
}

// FinishWithTime stamps the end time with an explicit value. The first
// finish wins; later calls are no-ops, so a re-finish can never move the
// timestamp.
func (s *Span) FinishWithTime(end time.Time) {
	if !s.EndTime.IsZero() {
		return
	}
	s.EndTime = end
}

// ToTraceparent renders the span's propagation header.
func (s *Span) ToTraceparent() string {
	return FormatTraceparent(s.TraceID, s.SpanID, s.Sampled)
}

// TraceContext returns the trace sub-record for this span. Absent fields
// stay zero-valued and are omitted from serialized output.
func (s *Span) TraceContext() TraceContext {
	return TraceContext{
		TraceID:      s.TraceID,
		SpanID:       s.SpanID,
		ParentSpanID: s.ParentSpanID,
		Op:           s.Op,
		Description:  s.Description,
		Status:       s.Status.String(),
	}
}
