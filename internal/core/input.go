package core

// Button is a bit in a button set.
type Button uint32

const (
	ButtonA     Button = 1 << iota // Swing button
	ButtonB                        // Secondary button
	ButtonX                        // Unused by golf, still counts as "any button"
	ButtonY                        // Unused by golf, still counts as "any button"
	ButtonTouch                    // Pointer (touch or mouse) contact
)

// String returns a human-readable name for a single button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}

// Buttons is a set of buttons.
type Buttons uint32

// Has reports whether b is in the set.
func (s Buttons) Has(b Button) bool {
	return s&Buttons(b) != 0
}

// With returns the set with b added.
func (s Buttons) With(b Button) Buttons {
	return s | Buttons(b)
}

// Without returns the set with b removed.
func (s Buttons) Without(b Button) Buttons {
	return s &^ Buttons(b)
}

// Any reports whether the set is non-empty.
func (s Buttons) Any() bool {
	return s != 0
}

// InputFrame is the decoded input snapshot for one simulation tick.
// The engine treats it as read-only for the duration of the tick.
type InputFrame struct {
	Pressed  Buttons // Buttons that went down this tick
	Held     Buttons // Buttons currently down
	Released Buttons // Buttons that went up this tick

	// Analog is the stick vector in device convention (+Y is up).
	Analog Vec2

	// Pointer is the active pointer position in board units, nil when
	// no pointer is in contact.
	Pointer *Vec2

	// Dt is the elapsed time since the previous tick, in milliseconds.
	Dt float64
}

// NewInputFrame creates an empty input frame with the given time delta.
func NewInputFrame(dt float64) InputFrame {
	return InputFrame{Dt: dt}
}

// PointerAt returns the pointer position, or fallback when no pointer is down.
func (f InputFrame) PointerAt(fallback Vec2) Vec2 {
	if f.Pointer == nil {
		return fallback
	}
	return *f.Pointer
}

// Clone creates a copy of this input frame that shares no pointers.
func (f InputFrame) Clone() InputFrame {
	clone := f
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
