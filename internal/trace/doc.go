// Package trace implements the tracing primitives of the client: spans,
// transactions, the bounded span recorder, the outcome-status taxonomy, and
// the traceparent propagation codec.
//
// Model:
//   - Span: one timed unit of work inside a trace
//   - Transaction: the root span; owns the recorder and triggers reporting
//   - SpanRecorder: bounded, order-preserving registry of a trace's spans
//   - Event: the serialized snapshot handed to a capture sink on finish
//
// Sampling:
//
// The sampling decision is made by the environment, fixed at transaction
// creation, and inherited unchanged by every child. An unsampled
// transaction allocates no recorder and never reaches the sink.
//
// Thread Safety:
//
// Individual spans carry no locking and expect a single logical owner.
// The recorder is the one piece of shared state within a trace; its
// capacity check and append are a single atomic step, so concurrent
// StartChild calls preserve the first-N-win guarantee.
//
// No operation here blocks or performs I/O. Transaction.Finish hands its
// payload to the sink synchronously; everything past that handoff —
// batching, retry, transport — is the sink's concern.
package trace
