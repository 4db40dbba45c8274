package golf

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// BoardSnapshot captures the dynamic state of one board.
type BoardSnapshot struct {
	BallX, BallY   float64
	ScaleX, ScaleY float64
	VelX, VelY     float64
	Speed          float64
	DirX, DirY     int
	Done           bool
}

// Snapshot captures the complete engine state for determinism testing and replay.
type Snapshot struct {
	Level        int
	Strokes      int
	TotalStrokes int
	Fade         int
	Finished     bool
	Phase        AimPhase
	Meter        int
	Primary      BoardSnapshot
	Secondary    BoardSnapshot
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Level:        e.next,
		Strokes:      e.levelStrokes,
		TotalStrokes: e.totalStrokes,
		Fade:         e.fade,
		Finished:     e.finished,
		Phase:        e.aim.Phase(),
		Meter:        e.aim.Meter(),
		Primary:      snapshotBoard(&e.primary),
		Secondary:    snapshotBoard(&e.secondary),
	}
}

func snapshotBoard(b *Board) BoardSnapshot {
	return BoardSnapshot{
		BallX:  b.Ball.Pos.X,
		BallY:  b.Ball.Pos.Y,
		ScaleX: b.Ball.Scale.X,
		ScaleY: b.Ball.Scale.Y,
		VelX:   b.Ball.Vel.X,
		VelY:   b.Ball.Vel.Y,
		Speed:  b.Ball.Speed,
		DirX:   b.DirX,
		DirY:   b.DirY,
		Done:   b.Done,
	}
}

// Hash returns an FNV-1a digest of the snapshot. Floats are hashed by their
// exact bit patterns, so two runs only match when they are bit-identical.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	word := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	flag := func(b bool) {
		if b {
			word(1)
		} else {
			word(0)
		}
	}
	board := func(b BoardSnapshot) {
		for _, f := range []float64{b.BallX, b.BallY, b.ScaleX, b.ScaleY, b.VelX, b.VelY, b.Speed} {
			word(math.Float64bits(f))
		}
		word(uint64(int64(b.DirX)))
		word(uint64(int64(b.DirY)))
		flag(b.Done)
	}

	for _, v := range []int{s.Level, s.Strokes, s.TotalStrokes, s.Fade, int(s.Phase), s.Meter} {
		word(uint64(int64(v)))
	}
	flag(s.Finished)
	board(s.Primary)
	board(s.Secondary)
	return h.Sum64()
}
