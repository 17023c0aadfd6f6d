package capture

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/pulseapm/pulse-go/internal/shared/id"
	"github.com/pulseapm/pulse-go/internal/trace"
)

// Envelope wraps one captured event for delivery. The envelope ID is a
// ULID, so a downstream store can order envelopes by creation time without
// trusting clocks in the payload.
type Envelope struct {
	EnvelopeID id.EnvelopeID `json:"envelope_id"`
	SentAt     time.Time     `json:"sent_at"`
	Event      *trace.Event  `json:"event"`
}

// NewEnvelope wraps event with a fresh envelope ID and the current time.
func NewEnvelope(event *trace.Event) *Envelope {
	return &Envelope{
		EnvelopeID: id.NewEnvelopeID(),
		SentAt:     time.Now().UTC(),
		Event:      event,
	}
}

// Encode serializes the envelope. Payloads can carry an arbitrary number
// of spans, so encoding goes through sonic rather than encoding/json.
func (e *Envelope) Encode() ([]byte, error) {
	return sonic.Marshal(e)
}

// EncodeEvent serializes a bare event without the envelope wrapper.
func EncodeEvent(event *trace.Event) ([]byte, error) {
	return sonic.Marshal(event)
}
