package golf

import (
	"fmt"
	"math"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// Primary surface side columns, in board units.
const (
	HUDWidth   = 40
	MeterWidth = 40
	PrimaryW   = HUDWidth + core.BoardW + MeterWidth
)

// Minimum surface size in cells below which only a warning is drawn.
const (
	MinCols = 20
	MinRows = 6
)

// Glyphs.
const (
	TurfChar     = '·'
	WallChar     = '█'
	WallFadeChar = '▒'
	HoleChar     = 'O'
	HoleFadeChar = 'o'
	BallChar     = '●'
	BallSinkChar = '•'
	MeterChar    = '█'
	MeterEmpty   = '│'

	arrowReach = 20.0 // Distance of the aim arrow from the ball centre
	fadeDim    = 128  // Fade below which props are drawn dimmed
	messagePad = 2    // Columns between a message and its panel border
)

var arrowGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// surface maps board units onto the cells of a screen.
type surface struct {
	dst     *core.Screen
	w, h    float64 // Logical size mapped onto the whole screen
	originX float64 // Logical x of the board's left edge
}

func (s surface) cell(p core.Vec2) (int, int) {
	x := math.Floor((p.X + s.originX) * float64(s.dst.Width()) / s.w)
	y := math.Floor(p.Y * float64(s.dst.Height()) / s.h)
	return int(x), int(y)
}

func (s surface) rect(b core.Box) core.Rect {
	x0, y0 := s.cell(b.Min)
	x1, y1 := s.cell(b.Min.Add(core.V(b.W, b.H)))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func tooSmall(dst *core.Screen) bool {
	if dst.Width() >= MinCols && dst.Height() >= MinRows {
		return false
	}
	dst.Clear()
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	return true
}

// RenderPrimary draws the HUD column, the first board and the power meter.
// Once the course is finished it draws the completion message instead.
func (e *Engine) RenderPrimary(dst *core.Screen) {
	if tooSmall(dst) {
		return
	}
	dst.Clear()

	if e.finished {
		e.drawMessage(dst, []string{
			"You completed",
			"the course!",
			"",
			"Press any button",
			"to try again!",
		})
		return
	}

	s := surface{dst: dst, w: PrimaryW, h: core.BoardH, originX: HUDWidth}
	x0, _ := s.cell(core.V(0, 0))
	x1, _ := s.cell(core.V(core.BoardW, 0))
	dst.DrawRectColor(core.NewRect(x0, 0, x1-x0, dst.Height()), TurfChar, core.ColorTurf)

	e.drawBoard(s, &e.primary, core.ColorWallDark)
	e.drawHUD(dst, x0)
	e.drawMeter(dst, x1)
}

// RenderSecondary draws the second board, or the stroke tally once the
// course is finished.
func (e *Engine) RenderSecondary(dst *core.Screen) {
	if tooSmall(dst) {
		return
	}
	dst.Clear()

	if e.finished {
		e.drawMessage(dst, []string{
			"It took you:",
			fmt.Sprintf("%d", e.totalStrokes),
			"strokes",
		})
		return
	}

	dst.FillColor(TurfChar, core.ColorTurf)
	e.drawBoard(surface{dst: dst, w: core.BoardW, h: core.BoardH}, &e.secondary, core.ColorWall)
}

func (e *Engine) drawBoard(s surface, b *Board, wall core.Color) {
	wallChar, holeChar := WallChar, HoleChar
	if e.fade < fadeDim {
		wallChar, holeChar = WallFadeChar, HoleFadeChar
	}

	if e.fade > 0 {
		for _, o := range b.Obstacles {
			s.dst.DrawRectColor(s.rect(o.Box()), wallChar, wall)
		}
		hx, hy := s.cell(b.HoleCenter())
		s.dst.SetColor(hx, hy, holeChar, core.ColorHole)
	}

	if !b.BallVisible() {
		return
	}
	centre := b.Ball.Pos.Add(core.V(BallSize/2.0, BallSize/2.0))
	bx, by := s.cell(centre)
	glyph := BallChar
	if b.Done {
		glyph = BallSinkChar
	}
	s.dst.SetColor(bx, by, glyph, core.ColorBall)

	if e.aim.Phase() != AimIdle && !b.Done && e.CanMove() {
		dir := e.aim.Direction()
		ax, ay := s.cell(centre.Add(dir.Scale(arrowReach)))
		s.dst.SetColor(ax, ay, ArrowGlyph(dir), core.ColorArrow)
	}
}

func (e *Engine) drawHUD(dst *core.Screen, width int) {
	h := float64(dst.Height())
	row := func(y float64) int { return int(y * h / core.BoardH) }

	center := func(y int, text string, c core.Color) {
		x := (width - len([]rune(text))) / 2
		dst.DrawTextColor(max(x, 0), y, text, c)
	}
	center(row(24), "Lvl", core.ColorHUD)
	center(row(64), fmt.Sprintf("%d", e.next), core.ColorHUD)
	center(row(120), "Strk", core.ColorHUD)
	center(row(160), fmt.Sprintf("%d", e.levelStrokes), core.ColorHUD)
}

func (e *Engine) drawMeter(dst *core.Screen, left int) {
	if e.aim.Phase() != AimCharging {
		return
	}
	x := left + (dst.Width()-left)/2
	h := dst.Height()
	filled := core.Clamp(int(math.Round(float64(e.aim.Meter())*float64(h)/MeterMax)), 0, h)
	for y := 0; y < h; y++ {
		if y >= h-filled {
			dst.SetColor(x, y, MeterChar, core.ColorMeter)
		} else {
			dst.SetColor(x, y, MeterEmpty, core.ColorGray)
		}
	}
}

func (e *Engine) drawMessage(dst *core.Screen, lines []string) {
	if e.fade <= 0 {
		return
	}
	c := core.ColorBrightWhite
	if e.fade < fadeDim {
		c = core.ColorGray
	}

	widest := 0
	for _, line := range lines {
		widest = max(widest, len([]rune(line)))
	}
	panel := core.NewRect(0, 0,
		core.Clamp(widest+2*messagePad, 0, dst.Width()),
		core.Clamp(len(lines)+2, 0, dst.Height()))
	panel.X = (dst.Width() - panel.W) / 2
	panel.Y = (dst.Height() - panel.H) / 2
	dst.DrawBox(panel)

	for i, line := range lines {
		dst.DrawTextCenteredColor(panel.Y+1+i, line, c)
	}
}

// ArrowGlyph returns the arrow rune closest to dir (screen convention).
func ArrowGlyph(dir core.Vec2) rune {
	octant := int(math.Round(dir.Angle()/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrowGlyphs[octant]
}

