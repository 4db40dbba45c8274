// Package level defines the static course data consumed by the golf engine:
// per-level ball starts, hole positions and obstacle layouts for both boards.
package level

import "github.com/vovakirdan/twin-golf/internal/core"

// TileSize is the edge length of a small obstacle in board units.
const TileSize = 16

// HoleOffset shifts hole positions up so the cup sits on the tile grid.
const HoleOffset = 2.0 / 32.0

// CaptureRadius is the ball-to-hole distance below which a ball drops.
const CaptureRadius = 12.0

// SizeClass is an obstacle footprint class.
type SizeClass int

const (
	Small SizeClass = iota // One tile
	Big                    // Two tiles
)

// String returns the class name used in course files.
func (s SizeClass) String() string {
	if s == Big {
		return "big"
	}
	return "small"
}

// Edge returns the obstacle edge length in board units.
func (s SizeClass) Edge() float64 {
	if s == Big {
		return 2 * TileSize
	}
	return TileSize
}

// Obstacle is an immutable square wall block.
type Obstacle struct {
	Pos  core.Vec2 // Top-left corner
	Size SizeClass
}

// Box returns the obstacle collision footprint.
func (o Obstacle) Box() core.Box {
	e := o.Size.Edge()
	return core.NewBox(o.Pos, e, e)
}

// BoardDef is the layout of one board for one level.
type BoardDef struct {
	BallStart core.Vec2
	Hole      core.Vec2
	Obstacles []Obstacle
}

// Def is one catalog entry: the layouts of both boards.
type Def struct {
	Name      string
	Primary   BoardDef
	Secondary BoardDef
}

// Catalog is an ordered, finite sequence of levels.
type Catalog struct {
	ID     string
	Name   string
	Levels []Def
}

// Len returns the number of levels.
func (c Catalog) Len() int {
	return len(c.Levels)
}

// At returns the level at index and whether it exists.
// An index past the end means the course is complete.
func (c Catalog) At(index int) (Def, bool) {
	if index < 0 || index >= len(c.Levels) {
		return Def{}, false
	}
	return c.Levels[index], true
}

// BallPos converts tile coordinates to a ball start position.
func BallPos(x, y float64) core.Vec2 {
	return core.V(TileSize*x, TileSize*y)
}

// TilePos converts tile coordinates to an obstacle position.
func TilePos(x, y float64) core.Vec2 {
	return core.V(TileSize*x, TileSize*y)
}

// HolePos converts tile coordinates to a hole position.
func HolePos(x, y float64) core.Vec2 {
	return core.V(TileSize*x, TileSize*y-HoleOffset)
}

// BigTile returns a two-tile obstacle at tile coordinates.
func BigTile(x, y float64) Obstacle {
	return Obstacle{Pos: TilePos(x, y), Size: Big}
}

// SmallTile returns a one-tile obstacle at tile coordinates.
func SmallTile(x, y float64) Obstacle {
	return Obstacle{Pos: TilePos(x, y), Size: Small}
}
