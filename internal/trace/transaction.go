package trace

import (
	"time"

	"github.com/pulseapm/pulse-go/internal/shared/id"
)

// unlabeledTransaction names a transaction whose caller supplied no name.
const unlabeledTransaction = "unlabeled transaction"

// Sink receives the serialized payload of a finished sampled transaction.
// The handoff is synchronous and is where this package's contract ends;
// whatever the sink does with the event — and however long it takes — is
// its own business.
type Sink interface {
	CaptureTransaction(event *Event)
}

// Transaction is the root span of a trace. It is the only span that owns a
// recorder and the only one whose finish produces a capture.
type Transaction struct {
	Span
	Name string

	sink Sink
}

// TransactionOptions configures a new transaction.
type TransactionOptions struct {
	SpanOptions

	// Name labels the whole trace. Empty falls back to a fixed
	// placeholder; construction never fails.
	Name string

	// Sink receives the payload on finish. Nil makes finishing a pure
	// local operation.
	Sink Sink

	// MaxSpans caps the recorder; non-positive means DefaultMaxSpans.
	MaxSpans int
}

// NewTransaction creates the root span of a new trace. When the supplied
// sampling decision is affirmative, a recorder is allocated and the
// transaction registers itself as its first entry; otherwise no recorder
// ever exists and nothing in this trace is tracked.
func NewTransaction(opts TransactionOptions) *Transaction {
	t := &Transaction{
		Span: *NewSpan(opts.SpanOptions),
		Name: opts.Name,
		sink: opts.Sink,
	}
	if t.Name == "" {
		t.Name = unlabeledTransaction
	}
	if t.Sampled.Bool() {
		t.recorder = NewSpanRecorder(opts.MaxSpans)
		t.recorder.Add(&t.Span)
	}
	return t
}

// SetName relabels the transaction. Allowed any time before finish.
func (t *Transaction) SetName(name string) {
	if name != "" {
		t.Name = name
	}
}

// Recorder exposes the transaction's span recorder; nil when unsampled.
func (t *Transaction) Recorder() *SpanRecorder {
	return t.recorder
}

// Finish stamps the end time with the current clock and, for a sampled
// transaction, captures the trace. The first finish wins.
func (t *Transaction) Finish() {
	t.FinishWithTime(time.Now())
}

// FinishWithTime finishes with an explicit end time. If the transaction is
// sampled and a sink is attached, the serialized trace is handed over
// synchronously, exactly once. Children finished or not are all included;
// an unfinished child simply carries no end timestamp.
func (t *Transaction) FinishWithTime(end time.Time) {
	if !t.EndTime.IsZero() {
		return
	}
	t.Span.FinishWithTime(end)

	if t.recorder == nil || t.sink == nil {
		return
	}
	t.sink.CaptureTransaction(t.event())
}

// event builds the capture payload. The recorder's first entry is the
// transaction itself; the emitted span list carries every entry but that
// one.
func (t *Transaction) event() *Event {
	recorded := t.recorder.Spans()
	children := make([]*Span, 0, len(recorded))
	for _, s := range recorded {
		if s == &t.Span {
			continue
		}
		children = append(children, s)
	}
	return &Event{
		EventID:      id.NewEventID(),
		Name:         t.Name,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		Trace:        t.TraceContext(),
		Spans:        children,
		DroppedSpans: t.recorder.Dropped(),
	}
}
