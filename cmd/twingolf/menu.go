package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-golf/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a course interactively",
	Long: `Show the course picker. After quitting a course you return to the
picker to choose another.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Q            - Quit

Examples:
  twingolf menu
  twingolf menu --courses ./my-courses`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	current := settings.Course.Name
	for {
		width, height := terminalSize()
		id, err := tui.RunMenu(settings.Runtime(width, height), current)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}
		if err := play(id); err != nil {
			return err
		}
		current = id
	}
}
