// Package monitoring provides Prometheus metrics around the capture path.
//
// The tracing core performs no I/O and keeps no counters of its own; this
// package observes it from the outside by wrapping a capture sink. Wrap
// any trace.Sink with InstrumentSink and the capture rate, span volume,
// capacity drops, and sink latency become scrapeable.
package monitoring
