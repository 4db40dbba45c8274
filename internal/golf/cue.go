package golf

// Cue is an abstract sound-effect trigger.
type Cue int

const (
	CueChargeStart Cue = iota // Power meter started
	CueSwing                  // Charge released
	CueBallSunk               // A ball dropped into its hole
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueChargeStart:
		return "charge"
	case CueSwing:
		return "swing"
	case CueBallSunk:
		return "hole"
	default:
		return "unknown"
	}
}

// Cues lists every cue, in channel order.
func Cues() []Cue {
	return []Cue{CueSwing, CueChargeStart, CueBallSunk}
}

// CueSink receives fire-and-forget cue events. The engine always calls it;
// a sink without working audio simply does nothing.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(c Cue)

// Cue implements CueSink.
func (f CueFunc) Cue(c Cue) {
	f(c)
}

// NopSink discards all cues.
type NopSink struct{}

// Cue implements CueSink.
func (NopSink) Cue(Cue) {}
