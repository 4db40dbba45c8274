package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/golf"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// With color off the plain runes are returned.
func RenderScreen(s *core.Screen, color bool) string {
	if !color {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// PlainText returns the screen runes with trailing blanks trimmed from
// every row.
func PlainText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}

// Rows taken by everything but the two board interiors: header, two
// frames and the help line.
const chromeRows = 1 + 2*2 + 1

// Layout places the two surfaces in the terminal. The secondary board sits
// centred under the primary one, like the lower screen of a handheld.
type Layout struct {
	PrimaryW, PrimaryH     int // Interior cells
	SecondaryW, SecondaryH int
	Margin                 int // Left margin of the secondary frame

	// Terminal cell of the secondary interior's top-left corner.
	SecondaryX, SecondaryY int
}

// NewLayout fits both surfaces into the terminal, never using more cells
// than the configured resolution asks for.
func NewLayout(cfg core.RuntimeConfig) Layout {
	wantW := (golf.PrimaryW + cfg.CellW - 1) / cfg.CellW
	_, wantH := cfg.BoardCells()

	pw := max(min(wantW, cfg.ScreenW-2), 0)
	h := max(min(wantH, (cfg.ScreenH-chromeRows)/2), 0)
	sw := pw * core.BoardW / golf.PrimaryW
	margin := (pw - sw) / 2

	return Layout{
		PrimaryW:   pw,
		PrimaryH:   h,
		SecondaryW: sw,
		SecondaryH: h,
		Margin:     margin,
		SecondaryX: margin + 1,
		SecondaryY: 1 + h + 2 + 1,
	}
}

// ToBoard converts a terminal cell to secondary board units. The second
// result is false when the cell is outside the secondary board.
func (l Layout) ToBoard(x, y int) (core.Vec2, bool) {
	cx, cy := x-l.SecondaryX, y-l.SecondaryY
	inside := core.NewRect(l.SecondaryX, l.SecondaryY, l.SecondaryW, l.SecondaryH).Contains(x, y)
	if l.SecondaryW == 0 || l.SecondaryH == 0 {
		return core.Vec2{}, false
	}
	p := core.V(
		(float64(cx)+0.5)*core.BoardW/float64(l.SecondaryW),
		(float64(cy)+0.5)*core.BoardH/float64(l.SecondaryH),
	)
	p.X = core.ClampF(p.X, 0, core.BoardW)
	p.Y = core.ClampF(p.Y, 0, core.BoardH)
	return p, inside
}

// Compose joins the header, both framed surfaces and the footer.
func (l Layout) Compose(header, primary, secondary, footer string) string {
	top := frameStyle.Render(primary)
	bottom := frameStyle.MarginLeft(l.Margin).Render(secondary)
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		top,
		bottom,
		dimStyle.Render(footer),
	)
}
