package trace

// Sampled is the tri-state sampling decision attached to a trace. It is
// fixed when the root transaction is created and inherited unchanged by
// every descendant span.
type Sampled int

const (
	// SampledUndefined means no decision was supplied.
	SampledUndefined Sampled = iota
	SampledFalse
	SampledTrue
)

// Bool reports whether the decision is affirmatively true.
func (s Sampled) Bool() bool { return s == SampledTrue }

func (s Sampled) String() string {
	switch s {
	case SampledFalse:
		return "false"
	case SampledTrue:
		return "true"
	default:
		return "undefined"
	}
}
