// Package audio plays golf cues on the terminal bell.
//
// Each cue has its own channel. A cue arriving while its channel is still
// sounding restarts the channel, so at most one instance per cue is active.
package audio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/twin-golf/internal/golf"
)

// Approximate length of each cue.
var cueLength = map[golf.Cue]time.Duration{
	golf.CueSwing:       250 * time.Millisecond,
	golf.CueChargeStart: 400 * time.Millisecond,
	golf.CueBallSunk:    600 * time.Millisecond,
}

// Options configures a Player.
type Options struct {
	Enabled bool
	Bell    []golf.Cue // Cues that ring the bell
	Logger  *log.Logger
	Now     func() time.Time
}

// Player is a golf.CueSink backed by the terminal bell. When the output is
// not available it stays silent and only tracks channels.
type Player struct {
	out       io.Writer
	available bool
	bell      map[golf.Cue]bool
	logger    *log.Logger
	now       func() time.Time

	until   map[golf.Cue]time.Time
	started map[golf.Cue]int
}

// New creates a player writing bell characters to out. A nil out or a
// disabled player is unavailable.
func New(out io.Writer, opts Options) *Player {
	p := &Player{
		out:       out,
		available: opts.Enabled && out != nil,
		bell:      make(map[golf.Cue]bool, len(opts.Bell)),
		logger:    opts.Logger,
		now:       opts.Now,
		until:     make(map[golf.Cue]time.Time),
		started:   make(map[golf.Cue]int),
	}
	for _, c := range opts.Bell {
		p.bell[c] = true
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	return p
}

// NewTerminal creates a player on f, available only when f is a terminal.
func NewTerminal(f *os.File, opts Options) *Player {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		opts.Enabled = false
	}
	p := New(f, opts)
	p.logger.Info("audio", "available", p.available)
	return p
}

// Available reports whether cues reach the terminal.
func (p *Player) Available() bool {
	return p.available
}

// Cue implements golf.CueSink.
func (p *Player) Cue(c golf.Cue) {
	now := p.now()
	superseded := p.Playing(c)
	p.until[c] = now.Add(cueLength[c])
	p.started[c]++
	p.logger.Debug("cue", "cue", c, "superseded", superseded)

	if !p.available || !p.bell[c] {
		return
	}
	if _, err := io.WriteString(p.out, "\a"); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		p.available = false
	}
}

// Playing reports whether the channel of c is still sounding.
func (p *Player) Playing(c golf.Cue) bool {
	until, ok := p.until[c]
	return ok && p.now().Before(until)
}

// Started returns how many times c has been started.
func (p *Player) Started(c golf.Cue) int {
	return p.started[c]
}

// ParseCue converts a cue name to a cue.
func ParseCue(name string) (golf.Cue, error) {
	for _, c := range golf.Cues() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("audio: unknown cue %q", name)
}

// ParseCues converts cue names, stopping at the first unknown one.
func ParseCues(names []string) ([]golf.Cue, error) {
	cues := make([]golf.Cue, 0, len(names))
	for _, n := range names {
		c, err := ParseCue(n)
		if err != nil {
			return nil, err
		}
		cues = append(cues, c)
	}
	return cues, nil
}
