package trace

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink counts captures and retains the events it receives.
type fakeSink struct {
	mu     sync.Mutex
	events []*Event
}

func (s *fakeSink) CaptureTransaction(event *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *fakeSink) captured() []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Event(nil), s.events...)
}

func TestNewTransactionSampledAllocatesRecorder(t *testing.T) {
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	require.NotNil(t, tx.Recorder())
	assert.Equal(t, 1, tx.Recorder().Len(), "transaction registers itself as first entry")
	assert.Same(t, &tx.Span, tx.Recorder().Spans()[0])
}

func TestNewTransactionUnsampledHasNoRecorder(t *testing.T) {
	for _, sampled := range []Sampled{SampledUndefined, SampledFalse} {
		tx := NewTransaction(TransactionOptions{
			Name:        "GET /orders",
			SpanOptions: SpanOptions{Sampled: sampled},
		})
		assert.Nil(t, tx.Recorder(), "sampled=%v", sampled)
	}
}

func TestNewTransactionDefaultsName(t *testing.T) {
	tx := NewTransaction(TransactionOptions{})
	assert.Equal(t, "unlabeled transaction", tx.Name)

	tx.SetName("POST /checkout")
	assert.Equal(t, "POST /checkout", tx.Name)

	tx.SetName("")
	assert.Equal(t, "POST /checkout", tx.Name, "empty rename is ignored")
}

func TestDescendantsShareOneRecorder(t *testing.T) {
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	child := tx.StartChild(SpanOptions{Op: "db.query"})
	grandchild := child.StartChild(SpanOptions{Op: "db.connection"})

	assert.Same(t, tx.Recorder(), child.recorder)
	assert.Same(t, tx.Recorder(), grandchild.recorder)
	assert.Equal(t, 3, tx.Recorder().Len())
}

func TestFinishCapturesExactlyOnce(t *testing.T) {
	sink := &fakeSink{}
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		Sink:        sink,
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})
	child := tx.StartChild(SpanOptions{Op: "db.query"})

	// A child finishing never reaches the sink.
	child.Finish()
	assert.Empty(t, sink.captured())

	tx.Finish()
	tx.Finish()

	events := sink.captured()
	require.Len(t, events, 1, "finish captures exactly once")
	assert.Equal(t, "GET /orders", events[0].Name)
}

func TestFinishPayloadExcludesOwnEntry(t *testing.T) {
	sink := &fakeSink{}
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		Sink:        sink,
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	finished := tx.StartChild(SpanOptions{Op: "db.query"})
	finished.Finish()
	unfinished := tx.StartChild(SpanOptions{Op: "cache.get"})

	tx.Finish()

	events := sink.captured()
	require.Len(t, events, 1)
	event := events[0]

	// Both children are present, finished or not; the transaction is not.
	require.Len(t, event.Spans, 2)
	assert.Same(t, finished, event.Spans[0])
	assert.Same(t, unfinished, event.Spans[1])
	assert.True(t, event.Spans[1].EndTime.IsZero())
	assert.Equal(t, tx.TraceID, event.Trace.TraceID)
	assert.Equal(t, tx.SpanID, event.Trace.SpanID)
	assert.Len(t, string(event.EventID), 32)
}

func TestFinishCapacityBoundsPayload(t *testing.T) {
	const maxSpans = 5
	sink := &fakeSink{}
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		Sink:        sink,
		MaxSpans:    maxSpans,
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	var overflow []*Span
	for i := 0; i < 12; i++ {
		overflow = append(overflow, tx.StartChild(SpanOptions{Op: "db.query"}))
	}

	// Spans beyond capacity still function.
	last := overflow[len(overflow)-1]
	last.SetHTTPStatus(200)
	last.Finish()
	assert.True(t, last.IsSuccess())

	tx.Finish()

	events := sink.captured()
	require.Len(t, events, 1)
	// The transaction occupies one recorder slot.
	assert.Len(t, events[0].Spans, maxSpans-1)
	assert.Equal(t, int64(12-(maxSpans-1)), events[0].DroppedSpans)
}

func TestFinishUnsampledNeverReachesSink(t *testing.T) {
	sink := &fakeSink{}
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		Sink:        sink,
		SpanOptions: SpanOptions{Sampled: SampledFalse},
	})
	for i := 0; i < 20; i++ {
		tx.StartChild(SpanOptions{Op: "db.query"})
	}

	tx.Finish()

	assert.Empty(t, sink.captured())
	assert.False(t, tx.EndTime.IsZero(), "finish still stamps the end time")
}

func TestFinishWithoutSinkIsLocal(t *testing.T) {
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	end := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tx.FinishWithTime(end)

	assert.Equal(t, end, tx.EndTime)
}

func TestConcurrentChildrenUnderOneTransaction(t *testing.T) {
	const workers = 8
	const perWorker = 50

	sink := &fakeSink{}
	tx := NewTransaction(TransactionOptions{
		Name:        "GET /orders",
		Sink:        sink,
		MaxSpans:    100,
		SpanOptions: SpanOptions{Sampled: SampledTrue},
	})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				child := tx.StartChild(SpanOptions{Op: "worker.task"})
				child.Finish()
			}
		}()
	}
	wg.Wait()

	tx.Finish()

	events := sink.captured()
	require.Len(t, events, 1)
	assert.Len(t, events[0].Spans, 99, "capacity minus the transaction's own slot")
	for _, s := range events[0].Spans {
		assert.Equal(t, tx.TraceID, s.TraceID)
		assert.Equal(t, tx.SpanID, s.ParentSpanID)
	}
}
