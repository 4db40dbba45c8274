package level

import (
	"fmt"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// ValidationError contains details about a malformed course.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a catalog can be played:
//   - it has at least one level
//   - balls, holes and obstacles lie on the board
//   - no ball starts inside its hole's capture radius
func Validate(c Catalog) error {
	if len(c.Levels) == 0 {
		return ValidationError{
			Code:    "NO_LEVELS",
			Message: fmt.Sprintf("course %q has no levels", c.ID),
		}
	}

	for i, def := range c.Levels {
		if err := validateBoard(i, "primary", def.Primary); err != nil {
			return err
		}
		if err := validateBoard(i, "secondary", def.Secondary); err != nil {
			return err
		}
	}
	return nil
}

func validateBoard(index int, side string, b BoardDef) error {
	where := fmt.Sprintf("level %d %s board", index+1, side)

	if !onBoard(b.BallStart) {
		return ValidationError{
			Code:    "OUT_OF_BOUNDS",
			Message: fmt.Sprintf("%s: ball start %v is off the board", where, b.BallStart),
		}
	}
	if !onBoard(b.Hole) {
		return ValidationError{
			Code:    "OUT_OF_BOUNDS",
			Message: fmt.Sprintf("%s: hole %v is off the board", where, b.Hole),
		}
	}
	if b.BallStart.Dist(b.Hole) < CaptureRadius {
		return ValidationError{
			Code:    "START_IN_HOLE",
			Message: fmt.Sprintf("%s: ball starts inside the hole", where),
		}
	}

	for j, o := range b.Obstacles {
		if o.Size != Small && o.Size != Big {
			return ValidationError{
				Code:    "BAD_SIZE",
				Message: fmt.Sprintf("%s: obstacle %d has unknown size %d", where, j+1, o.Size),
			}
		}
		if !onBoard(o.Pos) {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("%s: obstacle %d at %v is off the board", where, j+1, o.Pos),
			}
		}
	}
	return nil
}

// onBoard allows the small negative hole offset on the top row.
func onBoard(p core.Vec2) bool {
	return p.X >= -1 && p.X < core.BoardW && p.Y >= -1 && p.Y < core.BoardH
}
