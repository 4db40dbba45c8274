// Package courses holds the built-in golf courses.
package courses

import (
	"github.com/vovakirdan/twin-golf/internal/golf/level"
	"github.com/vovakirdan/twin-golf/internal/registry"
)

// Course IDs.
const (
	ClassicID     = "classic"
	ClassicPlusID = "classic-plus"
)

func init() {
	registry.Register(ClassicID, Classic)
	registry.Register(ClassicPlusID, ClassicPlus)
}

// Classic returns the four-level launch course.
func Classic() level.Catalog {
	return level.Catalog{
		ID:     ClassicID,
		Name:   "Classic",
		Levels: classicLevels(),
	}
}

// ClassicPlus returns Classic followed by the open-field finale.
func ClassicPlus() level.Catalog {
	return level.Catalog{
		ID:     ClassicPlusID,
		Name:   "Classic+",
		Levels: append(classicLevels(), openField()),
	}
}

func classicLevels() []level.Def {
	return []level.Def{
		// Both boards share a wall with a gap in the middle
		{
			Name: "Gap",
			Primary: level.BoardDef{
				BallStart: level.BallPos(11.75, 4.75),
				Hole:      level.HolePos(2.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(6, 6),
					level.BigTile(6, 8),
					level.BigTile(6, 0),
					level.BigTile(6, 2),
				},
			},
			Secondary: level.BoardDef{
				BallStart: level.BallPos(11.75, 4.75),
				Hole:      level.HolePos(2.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(6, 6),
					level.BigTile(6, 8),
					level.BigTile(6, 0),
					level.BigTile(6, 2),
				},
			},
		},
		// The block sits in the way on one board only
		{
			Name: "Offset",
			Primary: level.BoardDef{
				BallStart: level.BallPos(11.75, 4.75),
				Hole:      level.HolePos(2.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(6, 4),
				},
			},
			Secondary: level.BoardDef{
				BallStart: level.BallPos(11.75, 4.75),
				Hole:      level.HolePos(2.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(6, 8),
				},
			},
		},
		{
			Name: "Diverge",
			Primary: level.BoardDef{
				BallStart: level.BallPos(10.25, 7.25),
				Hole:      level.HolePos(5.25, 2.25),
			},
			Secondary: level.BoardDef{
				BallStart: level.BallPos(10.25, 7.25),
				Hole:      level.HolePos(3.25, 4.25),
				Obstacles: []level.Obstacle{
					level.SmallTile(5, 2),
				},
			},
		},
		// Holes on opposite sides
		{
			Name: "Mirror",
			Primary: level.BoardDef{
				BallStart: level.BallPos(5.75, 4.75),
				Hole:      level.HolePos(1.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(7, 4),
					level.SmallTile(5, 3),
					level.SmallTile(3, 6),
				},
			},
			Secondary: level.BoardDef{
				BallStart: level.BallPos(4.75, 4.75),
				Hole:      level.HolePos(11.75, 4.75),
				Obstacles: []level.Obstacle{
					level.BigTile(2, 4),
					level.SmallTile(6, 3),
					level.SmallTile(9, 6),
				},
			},
		},
	}
}

func openField() level.Def {
	return level.Def{
		Name: "Open Field",
		Primary: level.BoardDef{
			BallStart: level.BallPos(12.75, 2.75),
			Hole:      level.HolePos(1.75, 1.75),
		},
		Secondary: level.BoardDef{
			BallStart: level.BallPos(5.75, 0.75),
			Hole:      level.HolePos(7.75, 0.75),
		},
	}
}
