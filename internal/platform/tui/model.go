package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twin-golf/internal/config"
	"github.com/vovakirdan/twin-golf/internal/core"
	"github.com/vovakirdan/twin-golf/internal/golf"
	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

// maxFrameMs caps the time step after the process was stalled.
const maxFrameMs = 100.0

// Options configures a play session.
type Options struct {
	Catalog level.Catalog
	Sink    golf.CueSink
	Logger  *log.Logger
	Input   config.InputConfig
}

// Model is the Bubble Tea model running a golf session.
type Model struct {
	catalog level.Catalog
	sink    golf.CueSink
	logger  *log.Logger

	config   core.RuntimeConfig
	layout   Layout
	keys     KeyMap
	help     help.Model
	controls *Controls

	title     *golf.Title
	engine    *golf.Engine
	primary   *core.Screen
	secondary *core.Screen

	lastTick  time.Time
	lastState core.GameState
	quitting  bool
}

// NewModel creates a model that starts on the title screen.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	if opts.Sink == nil {
		opts.Sink = golf.NopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	layout := NewLayout(cfg)

	return Model{
		catalog:   opts.Catalog,
		sink:      opts.Sink,
		logger:    opts.Logger,
		config:    cfg,
		layout:    layout,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		controls:  NewControls(opts.Input.AnalogMagnitude, opts.Input.AimStepDegrees),
		title:     golf.NewTitle(opts.Sink),
		primary:   core.NewScreen(layout.PrimaryW, layout.PrimaryH),
		secondary: core.NewScreen(layout.SecondaryW, layout.SecondaryH),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "course", m.catalog.ID, "levels", m.catalog.Len())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "level", m.lastState.Level, "total_strokes", m.lastState.TotalStrokes)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Swing):
		m.controls.Toggle(core.ButtonA)
	case key.Matches(msg, m.keys.AimLeft):
		m.controls.Rotate(1)
	case key.Matches(msg, m.keys.AimRight):
		m.controls.Rotate(-1)
	case key.Matches(msg, m.keys.AimUp):
		m.controls.Point(90)
	case key.Matches(msg, m.keys.AimDown):
		m.controls.Point(270)
	case key.Matches(msg, m.keys.Centre):
		m.controls.Centre()
	case key.Matches(msg, m.keys.ButtonB):
		m.controls.Tap(core.ButtonB)
	default:
		// Every other key still counts as a button for "press any button".
		m.controls.Tap(core.ButtonX)
	}
	return m, nil
}

// handleMouse maps the left button to pointer contact on the secondary board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, inside := m.layout.ToBoard(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.controls.PointerDown(p)
		}
	case tea.MouseActionMotion:
		m.controls.PointerMove(p)
	case tea.MouseActionRelease:
		m.controls.PointerUp()
	}
	return m, nil
}

// handleResize processes window resize events. Game state is kept; only
// the surfaces change size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout = NewLayout(m.config)
	m.primary.Resize(m.layout.PrimaryW, m.layout.PrimaryH)
	m.secondary.Resize(m.layout.SecondaryW, m.layout.SecondaryH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m = m.step(m.frameMs(now))
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// frameMs returns the elapsed time since the previous tick in milliseconds.
func (m Model) frameMs(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 1000.0 / float64(m.config.TickRate)
	}
	dt := float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	return core.ClampF(dt, 0, maxFrameMs)
}

// step feeds one input frame to the title or the engine.
func (m Model) step(dt float64) Model {
	in := m.controls.Frame(dt)

	if m.engine == nil {
		if m.title.Update(in) {
			m.startEngine()
		}
		return m
	}

	res := m.engine.Step(in)
	if res.Reset {
		m.logger.Info("course reset", "total_strokes", m.lastState.TotalStrokes)
		m.startEngine()
		return m
	}

	st := res.State
	if st.Level != m.lastState.Level && !st.Finished {
		m.logger.Info("level started", "level", st.Level, "total_strokes", st.TotalStrokes)
	}
	if st.Finished && !m.lastState.Finished {
		m.logger.Info("course finished", "course", m.catalog.ID, "total_strokes", st.TotalStrokes)
	}
	m.lastState = st
	return m
}

func (m *Model) startEngine() {
	m.engine = golf.NewEngine(m.catalog, m.sink)
	m.controls.Reset()
	m.lastState = m.engine.State()
	m.logger.Info("level started", "level", m.lastState.Level, "total_strokes", 0)
}

// State returns the last engine state.
func (m Model) State() core.GameState {
	return m.lastState
}

// Playing reports whether the title screen is over.
func (m Model) Playing() bool {
	return m.engine != nil
}

// render draws both surfaces.
func (m Model) render() {
	if m.engine == nil {
		m.title.RenderPrimary(m.primary)
		m.title.RenderSecondary(m.secondary)
		return
	}
	m.engine.RenderPrimary(m.primary)
	m.engine.RenderSecondary(m.secondary)
}

// saveScreenshot saves both surfaces to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".twingolf", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.catalog.ID, timestamp))
	data := PlainText(m.primary) + "\n\n" + PlainText(m.secondary) + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// header returns the status line above the boards.
func (m Model) header() string {
	name := m.catalog.Name
	if name == "" {
		name = m.catalog.ID
	}
	if m.engine == nil {
		return "Twin Golf · " + name
	}
	st := m.lastState
	if st.Finished {
		return fmt.Sprintf("Twin Golf · %s · complete · %d strokes", name, st.TotalStrokes)
	}
	return fmt.Sprintf("Twin Golf · %s · hole %d/%d · %d strokes", name, st.Level, m.catalog.Len(), st.TotalStrokes+st.Strokes)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return m.layout.Compose(
		m.header(),
		RenderScreen(m.primary, m.config.Color),
		RenderScreen(m.secondary, m.config.Color),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag aiming on the lower board
	)

	_, err := p.Run()
	return err
}
