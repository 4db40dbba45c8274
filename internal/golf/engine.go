package golf

import (
	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

// Level transition fade.
const (
	FadeStart = 255
	FadeStep  = 5
	FadeEnd   = -30
)

// Engine owns the two boards and the course progression. It is driven by one
// Update call per frame and is not safe for concurrent use.
type Engine struct {
	catalog level.Catalog
	sink    CueSink

	primary   Board
	secondary Board
	aim       Aimer

	next         int // Catalog index of the level advance will load
	levelStrokes int
	totalStrokes int
	fade         int
	finished     bool
}

// NewEngine creates an engine positioned on the first level of catalog.
// A nil sink discards cues.
func NewEngine(catalog level.Catalog, sink CueSink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	e := &Engine{
		catalog: catalog,
		sink:    sink,
	}
	e.advance()
	return e
}

// advance banks the level strokes and loads the next catalog entry. Past the
// end of the catalog it only marks the course finished.
func (e *Engine) advance() {
	e.totalStrokes += e.levelStrokes
	e.levelStrokes = 0
	e.fade = FadeStart

	def, ok := e.catalog.At(e.next)
	if !ok {
		e.finished = true
		return
	}
	e.next++

	e.primary.Load(def.Primary)
	e.secondary.Load(def.Secondary)
}

// Update runs one frame. It returns true when the finished course has faded
// out and the caller should discard the engine for a new one.
func (e *Engine) Update(in core.InputFrame) bool {
	if e.finished {
		return e.updateFinished(in)
	}

	if e.primary.Done && e.secondary.Done {
		if e.fade <= FadeEnd {
			e.advance()
		} else {
			e.fade -= FadeStep
		}
	}

	Simulate(&e.primary, in.Dt, e.sink)
	Simulate(&e.secondary, in.Dt, e.sink)

	if !e.CanMove() {
		return false
	}

	if l, ok := e.aim.Step(in, e.sink); ok {
		e.levelStrokes++
		e.primary.launch(l)
		e.secondary.launch(l)
	}
	return false
}

func (e *Engine) updateFinished(in core.InputFrame) bool {
	if e.fade != FadeStart {
		e.fade -= FadeStep
	}
	if e.fade <= FadeEnd {
		return true
	}
	if in.Pressed.Any() {
		e.sink.Cue(CueChargeStart)
		e.fade -= FadeStep
	}
	return false
}

// Step runs Update and reports the resulting state.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	reset := e.Update(in)
	return core.StepResult{State: e.State(), Reset: reset}
}

// CanMove reports whether the aiming controller may run: both balls are at
// rest and at least one board still needs a stroke.
func (e *Engine) CanMove() bool {
	if !e.primary.Still() || !e.secondary.Still() {
		return false
	}
	return !(e.primary.Done && e.secondary.Done)
}

// State returns a summary for the platform.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Level:        e.next,
		Strokes:      e.levelStrokes,
		TotalStrokes: e.totalStrokes,
		Finished:     e.finished,
	}
}

// Primary returns the first board.
func (e *Engine) Primary() *Board { return &e.primary }

// Secondary returns the second board.
func (e *Engine) Secondary() *Board { return &e.secondary }

// Aim returns the aiming controller.
func (e *Engine) Aim() *Aimer { return &e.aim }

// Fade returns the transition fade counter.
func (e *Engine) Fade() int { return e.fade }

// Finished reports whether the course is complete.
func (e *Engine) Finished() bool { return e.finished }

// Catalog returns the course being played.
func (e *Engine) Catalog() level.Catalog { return e.catalog }
