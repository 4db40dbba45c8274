package core

// Logical board dimensions in board units (one unit is one sprite pixel).
const (
	BoardW = 320
	BoardH = 240
)

// RuntimeConfig contains configuration passed to the engine's host at
// initialization. Screen sizes are in terminal cells.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driving Update
	CellW    int // Board units per terminal column
	CellH    int // Board units per terminal row
	Color    bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		CellW:    8,
		CellH:    16,
		Color:    true,
	}
}

// BoardCells returns the size of one board surface in terminal cells.
func (c RuntimeConfig) BoardCells() (w, h int) {
	return (BoardW + c.CellW - 1) / c.CellW, (BoardH + c.CellH - 1) / c.CellH
}

// GameState summarises the engine for the platform.
type GameState struct {
	Level        int  // 1-based level counter
	Strokes      int  // Strokes on the current level
	TotalStrokes int  // Strokes on completed levels
	Finished     bool // Course complete
}

// StepResult is returned by the engine after each tick.
type StepResult struct {
	State GameState
	Reset bool // Caller should discard the engine and start a new playthrough
}
