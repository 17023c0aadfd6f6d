// Package capture holds the receiving end of the tracing core: sink
// implementations that accept a finished transaction's payload, and the
// envelope encoding that wraps a payload for delivery.
//
// The delivery pipeline itself — batching, retry, transport — lives
// elsewhere. Everything here is synchronous and local: a sink takes the
// event, does its one thing, returns.
package capture
