package tui

import (
	"math"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// Controls turns terminal events into per-tick input frames.
//
// Terminals report key presses but not releases, so buttons that must be
// held are latched: Toggle presses and later releases them. The analog
// stick is emulated by a latched direction rotated with the aim keys.
type Controls struct {
	magnitude float64
	step      float64 // Degrees per rotation
	angle     float64 // Degrees, 90 is up
	stick     bool    // Stick deflected

	held     core.Buttons
	pressed  core.Buttons
	released core.Buttons
	deferred core.Buttons // Releases that arrived in the same tick as their press
	pointer  core.Vec2
}

// NewControls creates controls whose stick has the given magnitude and
// rotates stepDegrees per aim key press.
func NewControls(magnitude, stepDegrees float64) *Controls {
	return &Controls{
		magnitude: magnitude,
		step:      stepDegrees,
		angle:     90,
	}
}

// Press pushes a button down.
func (c *Controls) Press(b core.Button) {
	c.pressed = c.pressed.With(b)
	c.held = c.held.With(b)
	c.deferred = c.deferred.Without(b)
}

// Release lets a held button go. A release in the same tick as the press
// keeps the button held for that tick and is reported on the next one.
func (c *Controls) Release(b core.Button) {
	if !c.Held(b) {
		return
	}
	if c.pressed.Has(b) {
		c.deferred = c.deferred.With(b)
		return
	}
	c.held = c.held.Without(b)
	c.released = c.released.With(b)
}

// Tap presses and releases a button.
func (c *Controls) Tap(b core.Button) {
	c.Press(b)
	c.Release(b)
}

// Toggle presses a button that is up and releases one that is latched down.
func (c *Controls) Toggle(b core.Button) {
	if c.Held(b) {
		c.Release(b)
		return
	}
	c.Press(b)
}

// Held reports whether b is latched down and not waiting for its release.
func (c *Controls) Held(b core.Button) bool {
	return c.held.Has(b) && !c.deferred.Has(b)
}

// Rotate turns the stick by dir steps (positive is counter-clockwise). The
// first rotation of a centred stick only deflects it.
func (c *Controls) Rotate(dir int) {
	if !c.stick {
		c.stick = true
		return
	}
	c.angle = math.Mod(c.angle+float64(dir)*c.step+360, 360)
}

// Point deflects the stick toward angle degrees.
func (c *Controls) Point(angle float64) {
	c.stick = true
	c.angle = angle
}

// Centre releases the stick.
func (c *Controls) Centre() {
	c.stick = false
}

// Analog returns the current stick vector (+Y up).
func (c *Controls) Analog() core.Vec2 {
	if !c.stick {
		return core.Vec2{}
	}
	rad := c.angle * math.Pi / 180
	return core.V(math.Cos(rad)*c.magnitude, math.Sin(rad)*c.magnitude)
}

// PointerDown starts a pointer contact at p.
func (c *Controls) PointerDown(p core.Vec2) {
	c.pointer = p
	c.Press(core.ButtonTouch)
}

// PointerMove moves an active contact.
func (c *Controls) PointerMove(p core.Vec2) {
	if c.held.Has(core.ButtonTouch) {
		c.pointer = p
	}
}

// PointerUp ends the contact.
func (c *Controls) PointerUp() {
	c.Release(core.ButtonTouch)
}

// Frame builds the input for one tick and clears the edge sets.
func (c *Controls) Frame(dt float64) core.InputFrame {
	in := core.NewInputFrame(dt)
	in.Pressed = c.pressed
	in.Held = c.held
	in.Released = c.released
	in.Analog = c.Analog()
	if c.held.Has(core.ButtonTouch) {
		p := c.pointer
		in.Pointer = &p
	}

	c.held &^= c.deferred
	c.pressed = 0
	c.released = c.deferred
	c.deferred = 0
	return in
}

// Reset drops every button. The stick keeps its direction.
func (c *Controls) Reset() {
	c.held = 0
	c.pressed = 0
	c.released = 0
	c.deferred = 0
}
