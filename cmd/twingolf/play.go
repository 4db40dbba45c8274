package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twin-golf/internal/audio"
	"github.com/vovakirdan/twin-golf/internal/platform/tui"
	"github.com/vovakirdan/twin-golf/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [course]",
	Short: "Play a course",
	Long: `Start playing a course. Without an argument the course from the
settings is used.

Controls:
  Left/Right, A/D  - Rotate the aim stick
  Up/Down, W/S     - Point the stick up or down
  X                - Centre the stick
  Space/Enter      - Start charging, press again to swing
  Mouse drag       - Drag on the lower board, release to swing
  Q/Ctrl+C         - Quit

Examples:
  twingolf play
  twingolf play classic-plus
  twingolf play --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := settings.Course.Name
	if len(args) == 1 {
		id = args[0]
	}
	return play(id)
}

// play runs one interactive session of the course id.
func play(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown course %q (run 'twingolf courses' to list them)", id)
	}
	catalog, err := registry.Create(id)
	if err != nil {
		return err
	}

	bell, err := audio.ParseCues(settings.Audio.Bell)
	if err != nil {
		return err
	}
	sink := audio.NewTerminal(os.Stderr, audio.Options{
		Enabled: settings.Audio.Enabled,
		Bell:    bell,
		Logger:  logger,
	})

	width, height := terminalSize()
	err = tui.Run(tui.Options{
		Catalog: catalog,
		Sink:    sink,
		Logger:  logger,
		Input:   settings.Input,
	}, settings.Runtime(width, height))
	if err != nil {
		return fmt.Errorf("running course: %w", err)
	}
	return nil
}

// terminalSize returns the size of the terminal on stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
