// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The tracing core itself stays silent; logging happens around it, in the
// capture path and in whatever host wires this client up. WithTrace
// annotates a logger with trace identity so capture-side lines can be
// joined back to the trace they belong to.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("transaction captured", zap.Int("spans", n))
//	logger.WithTrace(traceID, spanID).Warn("recorder at capacity")
package logging
