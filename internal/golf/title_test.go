package golf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twin-golf/internal/core"
)

func TestTitleWaitsForPress(t *testing.T) {
	rec := &recorder{}
	title := NewTitle(rec)

	for i := 0; i < 500; i++ {
		require.False(t, title.Update(idle()))
	}
	assert.Equal(t, TitleFadeStart, title.Fade())
	assert.Empty(t, rec.cues)
}

func TestTitleFadesOutAfterPress(t *testing.T) {
	rec := &recorder{}
	title := NewTitle(rec)

	require.False(t, title.Update(press(core.ButtonA)))
	assert.Equal(t, 1, rec.count(CueChargeStart))

	ticks := TitleFadeStart / TitleFadeStep
	for i := 0; i < ticks; i++ {
		// Further presses do not restart the fade.
		require.False(t, title.Update(press(core.ButtonB)), "tick %d", i)
	}
	assert.Zero(t, title.Fade())
	assert.Equal(t, 1, rec.count(CueChargeStart))

	assert.True(t, title.Update(idle()))
}

func TestTitleRender(t *testing.T) {
	title := NewTitle(nil)
	primary := core.NewScreen(50, 15)
	secondary := core.NewScreen(40, 15)

	title.RenderPrimary(primary)
	title.RenderSecondary(secondary)

	assert.Contains(t, primary.String(), "█")
	assert.Contains(t, secondary.String(), "Press any button")
	assert.Contains(t, secondary.String(), "to start!")
}
