package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 15)

	if s.Width() != 40 || s.Height() != 15 {
		t.Fatalf("size = %dx%d, expected 40x15", s.Width(), s.Height())
	}
	if got := s.String(); strings.Trim(got, " \n") != "" {
		t.Errorf("new screen has content: %q", got)
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], '●', ColorBall)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' || got.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}

	s.DrawText(2, 1, "Strk")
	if got := s.Row(1); got != "  St" {
		t.Errorf("Row(1) = %q, expected text clipped at the right edge", got)
	}
}

func TestScreenSetResetsColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(1, 1, "Lvl", ColorHUD)

	if cell := s.GetCell(2, 1); cell.Rune != 'v' || cell.Color != ColorHUD {
		t.Errorf("GetCell(2, 1) = %+v, expected 'v' in HUD color", cell)
	}

	s.Set(2, 1, 'x')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should write the default color")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillColor('·', ColorTurf)

	if cell := s.GetCell(4, 2); cell.Rune != '·' || cell.Color != ColorTurf {
		t.Errorf("after FillColor, GetCell(4, 2) = %+v", cell)
	}

	s.Clear()
	if got := s.String(); got != "     \n     \n     " {
		t.Errorf("after Clear, String() = %q", got)
	}
}

func TestScreenDrawRectColor(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawRectColor(NewRect(2, 1, 3, 2), '█', ColorWall)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			inside := NewRect(2, 1, 3, 2).Contains(x, y)
			got := s.GetCell(x, y)
			if inside && (got.Rune != '█' || got.Color != ColorWall) {
				t.Errorf("(%d, %d) = %+v, expected wall", x, y, got)
			}
			if !inside && got.Rune != ' ' {
				t.Errorf("(%d, %d) = %q, expected blank outside the rect", x, y, got.Rune)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 6, 3))

	expected := []string{
		"        ",
		" ┌────┐ ",
		" │    │ ",
		" └────┘ ",
		"        ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even", 10, "Lv", "    Lv    "},
		{"odd remainder", 9, "Lv", "   Lv    "},
		{"runes not bytes", 9, "●●●", "   ●●●   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.width, 1)
			s.DrawTextCentered(0, tc.text)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Strk 3")
	s.DrawText(0, 5, "gone")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Strk" {
		t.Errorf("Row(0) = %q after shrinking", got)
	}

	s.Resize(12, 7)
	if got := s.Row(0); got != "Strk        " {
		t.Errorf("Row(0) = %q after growing", got)
	}
	if strings.Contains(s.String(), "gone") {
		t.Error("rows cut by shrinking should not come back")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(2); got != "   " {
		t.Errorf("Row(2) = %q, expected blanks", got)
	}
}
