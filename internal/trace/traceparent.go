package trace

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pulseapm/pulse-go/internal/shared/id"
)

// TraceparentVersion is the fixed version segment of the propagation header.
const TraceparentVersion = "00"

// ErrMalformedTraceContext is wrapped by every parse failure. Callers
// should treat it as "no incoming trace" and start a fresh transaction.
var ErrMalformedTraceContext = errors.New("malformed trace context")

var versionPattern = regexp.MustCompile(`^[0-9a-f]{2}$`)

// FormatTraceparent renders the propagation header
// <version>-<traceId>-<spanId>-<flags>: 2, 32, 16 hex characters and a
// single sampling flag, hyphen-separated. The flag is 1 only for an
// affirmative sampling decision; unset and false both render as 0.
func FormatTraceparent(traceID id.TraceID, spanID id.SpanID, sampled Sampled) string {
	flag := "0"
	if sampled.Bool() {
		flag = "1"
	}
	return fmt.Sprintf("%s-%s-%s-%s", TraceparentVersion, traceID, spanID, flag)
}

// ParseTraceparent decodes a propagation header produced by
// FormatTraceparent or a compatible tracer. Malformed input — wrong
// segment count, wrong hex lengths, an unknown flag — fails with an error
// wrapping ErrMalformedTraceContext.
func ParseTraceparent(header string) (id.TraceID, id.SpanID, Sampled, error) {
	parts := strings.Split(header, "-")
	if len(parts) != 4 {
		return "", "", SampledUndefined, fmt.Errorf("%w: expected 4 segments, got %d", ErrMalformedTraceContext, len(parts))
	}
	if !versionPattern.MatchString(parts[0]) {
		return "", "", SampledUndefined, fmt.Errorf("%w: bad version %q", ErrMalformedTraceContext, parts[0])
	}
	if !id.IsValidTraceID(parts[1]) {
		return "", "", SampledUndefined, fmt.Errorf("%w: bad trace id %q", ErrMalformedTraceContext, parts[1])
	}
	if !id.IsValidSpanID(parts[2]) {
		return "", "", SampledUndefined, fmt.Errorf("%w: bad span id %q", ErrMalformedTraceContext, parts[2])
	}

	var sampled Sampled
	switch parts[3] {
	case "0":
		sampled = SampledFalse
	case "1":
		sampled = SampledTrue
	default:
		return "", "", SampledUndefined, fmt.Errorf("%w: bad flags %q", ErrMalformedTraceContext, parts[3])
	}
	return id.TraceID(parts[1]), id.SpanID(parts[2]), sampled, nil
}

// ContinueFromTraceparent starts a transaction that continues the trace
// described by header: same trace ID, the remote span as parent, the
// remote sampling decision. A malformed header means no incoming trace;
// the returned transaction is then a fresh root built from opts alone.
func ContinueFromTraceparent(header string, opts TransactionOptions) *Transaction {
	traceID, parentSpanID, sampled, err := ParseTraceparent(header)
	if err != nil {
		return NewTransaction(opts)
	}
	opts.TraceID = traceID
	opts.ParentSpanID = parentSpanID
	opts.Sampled = sampled
	return NewTransaction(opts)
}
