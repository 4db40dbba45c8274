package golf

import (
	"fmt"

	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

const tickMs = 16.0

// recorder collects emitted cues.
type recorder struct {
	cues []Cue
}

func (r *recorder) Cue(c Cue) {
	r.cues = append(r.cues, c)
}

func (r *recorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testCatalog(n int) level.Catalog {
	levels := make([]level.Def, n)
	for i := range levels {
		levels[i] = level.Def{
			Name: fmt.Sprintf("L%d", i+1),
			Primary: level.BoardDef{
				BallStart: core.V(160, 120),
				Hole:      core.V(40, 40),
			},
			Secondary: level.BoardDef{
				BallStart: core.V(100, 120),
				Hole:      core.V(280, 200),
				Obstacles: []level.Obstacle{{Pos: core.V(200, 40), Size: level.Big}},
			},
		}
	}
	return level.Catalog{ID: "test", Name: "Test", Levels: levels}
}

func idle() core.InputFrame {
	return core.NewInputFrame(tickMs)
}

func stick(x, y float64, held core.Buttons) core.InputFrame {
	in := core.NewInputFrame(tickMs)
	in.Analog = core.V(x, y)
	in.Held = held
	return in
}

func touchDown(p core.Vec2) core.InputFrame {
	in := core.NewInputFrame(tickMs)
	in.Pressed = in.Pressed.With(core.ButtonTouch)
	in.Held = in.Held.With(core.ButtonTouch)
	in.Pointer = &p
	return in
}

func touchHeld(p core.Vec2) core.InputFrame {
	in := core.NewInputFrame(tickMs)
	in.Held = in.Held.With(core.ButtonTouch)
	in.Pointer = &p
	return in
}

func touchUp() core.InputFrame {
	in := core.NewInputFrame(tickMs)
	in.Released = in.Released.With(core.ButtonTouch)
	return in
}

func press(b core.Button) core.InputFrame {
	in := core.NewInputFrame(tickMs)
	in.Pressed = in.Pressed.With(b)
	in.Held = in.Held.With(b)
	return in
}

// sinkBoth marks both boards of e as holed.
func sinkBoth(e *Engine) {
	e.primary.Done = true
	e.secondary.Done = true
}
