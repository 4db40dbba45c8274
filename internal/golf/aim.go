package golf

import (
	"github.com/vovakirdan/twin-golf/internal/core"
)

// Aiming and power constants.
const (
	MeterMax       = 30
	AnalogDeadzone = 36.0 // Minimum stick magnitude that aims
	DragDeadzone   = 24.0 // Minimum drag distance that aims
)

// AimPhase is the phase of the aiming controller.
type AimPhase int

const (
	AimIdle AimPhase = iota
	AimAiming
	AimCharging
)

// String returns the phase name.
func (p AimPhase) String() string {
	switch p {
	case AimIdle:
		return "idle"
	case AimAiming:
		return "aiming"
	case AimCharging:
		return "charging"
	default:
		return "unknown"
	}
}

// Launch is one stroke, shared by both boards.
type Launch struct {
	Vec        core.Vec2 // Aim direction scaled by the meter fraction
	Speed      float64   // Magnitude of Vec
	DirX, DirY int
}

// Aimer turns analog, drag and swing input into launches.
type Aimer struct {
	aiming   bool
	charging bool
	dragging bool

	dragFrom core.Vec2
	pointer  core.Vec2 // Last known pointer position

	dir      core.Vec2 // Unit aim direction, valid while aiming
	meter    int
	meterDir int
}

// Phase returns the current controller phase.
func (a *Aimer) Phase() AimPhase {
	switch {
	case a.charging:
		return AimCharging
	case a.aiming:
		return AimAiming
	default:
		return AimIdle
	}
}

// Direction returns the unit aim direction. Only meaningful while aiming.
func (a *Aimer) Direction() core.Vec2 {
	return a.dir
}

// Meter returns the power meter value in [0, MeterMax].
func (a *Aimer) Meter() int {
	return a.meter
}

// Dragging reports whether a pointer drag is in progress.
func (a *Aimer) Dragging() bool {
	return a.dragging
}

// Step runs one controller tick. It returns the launch and true on the tick
// the swing control is released while charging.
func (a *Aimer) Step(in core.InputFrame, sink CueSink) (Launch, bool) {
	touch := in.PointerAt(a.pointer)
	a.pointer = touch

	if !a.aiming {
		if in.Pressed.Has(core.ButtonTouch) && !a.dragging {
			a.dragging = true
			a.dragFrom = touch
		} else if in.Released.Has(core.ButtonTouch) && a.dragging {
			a.dragging = false
		}
	}

	if a.aiming {
		swing := (a.dragging && in.Held.Has(core.ButtonTouch)) ||
			(!a.dragging && in.Held.Has(core.ButtonA))

		if swing && !a.charging {
			a.charging = true
			a.meter = 0
			a.meterDir = 1
			sink.Cue(CueChargeStart)
		} else if !swing && a.charging {
			return a.release(sink), true
		}
	}

	// Stick +Y is up, screen +Y is down. 0-y keeps a centred axis at +0.
	stick := core.V(in.Analog.X, 0-in.Analog.Y)
	switch {
	case !a.dragging && stick.Len() > AnalogDeadzone:
		a.aiming = true
		a.dir = stick.Normalize()
	case a.dragging && a.dragFrom.Dist(touch) > DragDeadzone:
		a.aiming = true
		a.dir = a.dragFrom.Sub(touch).Normalize()
	default:
		a.aiming = false
		a.charging = false
	}

	if a.charging {
		a.meter += a.meterDir
		if a.meter <= 0 {
			a.meterDir = 1
		} else if a.meter >= MeterMax {
			a.meterDir = -1
		}
	}

	return Launch{}, false
}

func (a *Aimer) release(sink CueSink) Launch {
	sink.Cue(CueSwing)

	a.charging = false
	a.aiming = false
	a.dragging = false

	vec := a.dir.Scale(float64(a.meter) / MeterMax)
	return Launch{
		Vec:   vec,
		Speed: vec.Len(),
		DirX:  core.SignBit(vec.X),
		DirY:  core.SignBit(vec.Y),
	}
}
