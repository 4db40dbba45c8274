// Package core provides fundamental types and utilities shared by the golf
// engine and the platform layer. It has no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in board units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// normalizeEpsilon is the smallest magnitude Normalize accepts.
const normalizeEpsilon = 1e-9

// Normalize returns the unit vector pointing along v.
// Callers must guard against near-zero input (deadzone checks do this);
// normalizing a zero vector is a programming error and panics.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < normalizeEpsilon {
		panic(fmt.Sprintf("core: normalize of near-zero vector %v", v))
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians (screen convention).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Box is a floating point axis-aligned box used for collision tests.
type Box struct {
	Min Vec2 // Top-left corner
	W   float64
	H   float64
}

// NewBox creates a box at pos with the given size.
func NewBox(pos Vec2, w, h float64) Box {
	return Box{Min: pos, W: w, H: h}
}

// Overlaps reports whether the open interiors of b and o intersect.
// Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X+b.W > o.Min.X && b.Min.X < o.Min.X+o.W &&
		b.Min.Y+b.H > o.Min.Y && b.Min.Y < o.Min.Y+o.H
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// SignBit returns -1 when f has its sign bit set (including -0) and +1 otherwise.
func SignBit(f float64) int {
	if math.Signbit(f) {
		return -1
	}
	return 1
}
