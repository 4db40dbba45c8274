package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/registry"
)

// MenuModel is the Bubble Tea model for the course picker.
type MenuModel struct {
	courses  []registry.CourseInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected *registry.CourseInfo
}

// NewMenuModel creates a course picker listing every registered course.
// The cursor starts on current when it is registered.
func NewMenuModel(cfg core.RuntimeConfig, current string) MenuModel {
	m := MenuModel{
		courses: registry.List(),
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.table = m.createTable()
	for i, c := range m.courses {
		if c.ID == current {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable creates the course table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Course", Width: 14},
		{Title: "Title", Width: 20},
		{Title: "Holes", Width: 6},
	}
	if m.width > 60 {
		columns[1].Width = min(m.width-34, 36)
	}

	rows := make([]table.Row, 0, len(m.courses))
	for _, c := range m.courses {
		rows = append(rows, table.Row{c.ID, c.Title, fmt.Sprintf("%d", c.Levels)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows)+1, m.height-8), 2)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)
	t.KeyMap.LineUp = m.keys.Up
	t.KeyMap.LineDown = m.keys.Down

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.courses) > 0 {
				selected := m.courses[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("  T W I N   G O L F  "))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Pick a course"))
	b.WriteString("\n\n")
	if len(m.courses) == 0 {
		b.WriteString("No courses registered.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return lipgloss.NewStyle().MarginLeft(2).Render(b.String())
}

// Selected returns the selected course, or nil if none was selected.
func (m MenuModel) Selected() *registry.CourseInfo {
	return m.selected
}

// RunMenu runs the course picker and returns the chosen course ID, or ""
// when the user quit.
func RunMenu(cfg core.RuntimeConfig, current string) (string, error) {
	p := tea.NewProgram(NewMenuModel(cfg, current), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
