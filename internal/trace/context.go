package trace

import "context"

// Context keys for carrying the active span explicitly. There is no
// ambient global: hosts thread the context themselves and hand spans to
// whatever needs them.
type contextKey string

const spanContextKey contextKey = "pulse.span"

// ContextWithSpan returns a context carrying span as the active span.
func ContextWithSpan(ctx context.Context, span *Span) context.Context {
	return context.WithValue(ctx, spanContextKey, span)
}

// SpanFromContext retrieves the active span, or nil when none is set.
// Starting a child of whatever is active is then one call away:
//
//	if parent := trace.SpanFromContext(ctx); parent != nil {
//		child := parent.StartChild(trace.SpanOptions{Op: "db.query"})
//		defer child.Finish()
//	}
func SpanFromContext(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanContextKey).(*Span)
	return span
}
