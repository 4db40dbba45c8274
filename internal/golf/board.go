// Package golf implements the twin-board minigolf engine: two boards share a
// single launch, each board keeps its own rebound history, and both balls
// must be sunk to advance through the course.
package golf

import (
	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

// Sprite footprints and physics constants, in board units and milliseconds.
const (
	BallSize      = 8
	HoleSize      = 16
	CaptureRadius = level.CaptureRadius
	Friction      = 0.001 // Speed lost per millisecond

	sinkShrinkRate = 300.0 // Milliseconds for the ball to shrink away
	sinkApproach   = 0.01  // Fraction of the offset to the cup closed per millisecond
)

// Ball is the ball of one board.
type Ball struct {
	Pos   core.Vec2
	Scale core.Vec2 // Render scale, shrinks to zero while sinking
	Vel   core.Vec2 // Derived each tick from Speed and the board's rebound signs
	Speed float64   // Decaying launch magnitude

	// Launch and LaunchSpeed remember the stroke that set the ball moving.
	Launch      core.Vec2
	LaunchSpeed float64
}

// Board is one of the two simultaneous play surfaces.
type Board struct {
	Ball      Ball
	Hole      core.Vec2
	Obstacles []level.Obstacle
	Done      bool

	// Current rebound direction per axis, always -1 or +1.
	DirX, DirY int
}

// NewBoard creates a board laid out from def.
func NewBoard(def level.BoardDef) Board {
	var b Board
	b.Load(def)
	return b
}

// Load resets the board wholesale from a level definition.
func (b *Board) Load(def level.BoardDef) {
	b.Done = false
	b.Obstacles = append(b.Obstacles[:0], def.Obstacles...)
	b.Ball = Ball{
		Pos:   def.BallStart,
		Scale: core.V(1, 1),
	}
	b.Hole = def.Hole
	b.DirX, b.DirY = 1, 1
}

// HoleCenter returns the visual centre of the cup the ball sinks toward.
func (b *Board) HoleCenter() core.Vec2 {
	return b.Hole.Add(core.V(HoleSize/2.0, HoleSize/2.0-level.HoleOffset))
}

// Still reports whether the ball has zero velocity.
func (b *Board) Still() bool {
	return b.Ball.Vel.IsZero()
}

// BallVisible reports whether the ball still has a positive render scale.
func (b *Board) BallVisible() bool {
	return b.Ball.Scale.X > 0 && b.Ball.Scale.Y > 0
}

// launch sets the ball rolling. Boards already done are left untouched.
func (b *Board) launch(l Launch) {
	if b.Done {
		return
	}
	b.Ball.Vel = l.Vec
	b.Ball.Speed = l.Speed
	b.Ball.Launch = l.Vec
	b.Ball.LaunchSpeed = l.Speed
	b.DirX = l.DirX
	b.DirY = l.DirY
}
