package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twin-golf/internal/core"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func TestMenuStartsOnCurrentCourse(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 120, 60

	m := NewMenuModel(cfg, "classic-plus")
	if got := m.courses[m.table.Cursor()].ID; got != "classic-plus" {
		t.Errorf("cursor on %q, expected classic-plus", got)
	}
}

func TestMenuNavigationKeys(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 120, 60

	tests := []struct {
		name     string
		down, up tea.KeyMsg
	}{
		{"arrows", tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}},
		{"vim", runeKey('j'), runeKey('k')},
		{"wasd", runeKey('s'), runeKey('w')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(cfg, "classic")
			start := m.table.Cursor()

			m = sendMenu(t, m, tc.down)
			if got := m.table.Cursor(); got != start+1 {
				t.Fatalf("cursor after down = %d, expected %d", got, start+1)
			}
			m = sendMenu(t, m, tc.up)
			if got := m.table.Cursor(); got != start {
				t.Errorf("cursor after up = %d, expected %d", got, start)
			}
		})
	}
}

func TestMenuSelect(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 120, 60

	m := NewMenuModel(cfg, "classic")
	m = sendMenu(t, m, runeKey('s'))
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().ID != "classic-plus" {
		t.Errorf("Selected() = %+v, expected classic-plus", m.Selected())
	}
}
