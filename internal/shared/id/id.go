// Package id provides centralized identifier generation for the client.
//
// This package offers type-safe generation of every identifier the tracing
// core and capture path need:
//   - TraceID: 128-bit, rendered as 32 lowercase hex characters
//   - SpanID: 64-bit, rendered as 16 lowercase hex characters
//   - EventID: 128-bit payload identifier, 32 lowercase hex characters
//   - EnvelopeID: ULID, lexicographically sortable for delivery ordering
//
// Design Principles:
//   - One entropy source: a single guarded io.Reader feeds every generator
//   - Deterministic tests: NewGeneratorWithEntropy accepts a seeded reader
//   - Opaque identifiers: callers treat IDs as strings, never as numbers
package id

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ============================================================================
// Type-Safe ID Wrappers
// ============================================================================

// TraceID identifies a whole trace; shared by every span in it.
type TraceID string

// SpanID identifies a single span within a trace.
type SpanID string

// EventID identifies one captured transaction payload.
type EventID string

// EnvelopeID identifies one delivery envelope.
type EnvelopeID string

// ============================================================================
// Generator
// ============================================================================

// Generator generates trace, span and event identifiers.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	// Default generator with cryptographically secure entropy
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source
// Useful for testing with deterministic entropy
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// TraceID generates a fresh trace identifier: a random UUID rendered as
// bare lowercase hex, which yields exactly 32 characters.
func (g *Generator) TraceID() TraceID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	u, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		// crypto/rand never fails in practice; fall back to the
		// library's own source rather than return a zero ID.
		u = uuid.New()
	}
	return TraceID(hex.EncodeToString(u[:]))
}

// SpanID generates a fresh span identifier: 8 random bytes, hex-encoded.
func (g *Generator) SpanID() SpanID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	var b [8]byte
	if _, err := io.ReadFull(g.entropy, b[:]); err != nil {
		u := uuid.New()
		copy(b[:], u[:8])
	}
	return SpanID(hex.EncodeToString(b[:]))
}

// EventID generates a payload identifier. Same shape as a trace ID but a
// distinct type so the two are never swapped.
func (g *Generator) EventID() EventID {
	return EventID(g.TraceID())
}

// EnvelopeID generates a sortable delivery identifier.
func (g *Generator) EnvelopeID() EnvelopeID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return EnvelopeID(ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String())
}

// ============================================================================
// Package-Level Generators
// ============================================================================

// NewTraceID generates a trace ID from the default generator
func NewTraceID() TraceID {
	return Default().TraceID()
}

// NewSpanID generates a span ID from the default generator
func NewSpanID() SpanID {
	return Default().SpanID()
}

// NewEventID generates an event ID from the default generator
func NewEventID() EventID {
	return Default().EventID()
}

// NewEnvelopeID generates an envelope ID from the default generator
func NewEnvelopeID() EnvelopeID {
	return Default().EnvelopeID()
}

// ============================================================================
// Type Conversion and Validation
// ============================================================================

// String methods for ID types
func (id TraceID) String() string    { return string(id) }
func (id SpanID) String() string     { return string(id) }
func (id EventID) String() string    { return string(id) }
func (id EnvelopeID) String() string { return string(id) }

var (
	traceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)
	spanIDPattern  = regexp.MustCompile(`^[0-9a-f]{16}$`)
)

// IsValidTraceID reports whether s is 32 lowercase hex characters
func IsValidTraceID(s string) bool {
	return traceIDPattern.MatchString(s)
}

// IsValidSpanID reports whether s is 16 lowercase hex characters
func IsValidSpanID(s string) bool {
	return spanIDPattern.MatchString(s)
}
