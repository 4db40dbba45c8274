package golf

import (
	"math"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// Title screen fade.
const (
	TitleFadeStart = 275
	TitleFadeStep  = 5

	titleBobPeriod = 800.0 // Milliseconds per radian of the logo bob
	titleBobHeight = 10.0  // Board units
)

var titleLogo = []string{
	"▀█▀ █ █ █ █ █▄ █",
	" █  ▀▄▀▄▀ █ █ ▀█",
	"",
	"█▀▀ █▀█ █   █▀▀",
	"█▄█ █▄█ █▄▄ █▀ ",
}

// Title is the screen shown before the first engine is created.
type Title struct {
	fade    int
	fadeDir int
	elapsed float64
	sink    CueSink
}

// NewTitle creates a title screen. A nil sink discards cues.
func NewTitle(sink CueSink) *Title {
	if sink == nil {
		sink = NopSink{}
	}
	return &Title{fade: TitleFadeStart, sink: sink}
}

// Update runs one frame and reports whether the title has faded out and
// play should start.
func (t *Title) Update(in core.InputFrame) bool {
	t.elapsed += in.Dt

	switch {
	case in.Pressed.Any() && t.fadeDir == 0:
		t.sink.Cue(CueChargeStart)
		t.fadeDir = TitleFadeStep
	case t.fade > 0:
		t.fade -= t.fadeDir
	default:
		return true
	}
	return false
}

// Fade returns the title fade counter.
func (t *Title) Fade() int {
	return t.fade
}

// RenderPrimary draws the bobbing logo.
func (t *Title) RenderPrimary(dst *core.Screen) {
	if tooSmall(dst) {
		return
	}
	dst.Clear()
	if t.fade <= 0 {
		return
	}

	bob := titleBobHeight * math.Sin(t.elapsed/titleBobPeriod)
	offset := int(math.Round(bob * float64(dst.Height()) / core.BoardH))
	top := (dst.Height()-len(titleLogo))/2 + offset
	c := t.color()
	for i, line := range titleLogo {
		dst.DrawTextCenteredColor(top+i, line, c)
	}
}

// RenderSecondary draws the start prompt.
func (t *Title) RenderSecondary(dst *core.Screen) {
	if tooSmall(dst) {
		return
	}
	dst.Clear()
	if t.fade <= 0 {
		return
	}

	c := t.color()
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-1, "Press any button", c)
	dst.DrawTextCenteredColor(mid, "to start!", c)
}

func (t *Title) color() core.Color {
	if t.fade < fadeDim {
		return core.ColorGray
	}
	return core.ColorBrightWhite
}
