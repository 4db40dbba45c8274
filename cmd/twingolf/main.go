// twingolf is a two-board minigolf game for the terminal: one stroke drives
// the ball on both boards, and both balls must be holed to move on.
//
// Usage:
//
//	twingolf play [course]   - Play a course (default from settings)
//	twingolf menu            - Pick a course interactively
//	twingolf courses         - List available courses
//	twingolf config          - Print the effective settings
//
// Global flags:
//
//	--config <path>     - Settings file (default: search order, then built-in)
//	--courses <dir>     - Directory of YAML courses to add
//	--fps <rate>        - Tick rate
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-golf/internal/config"
	"github.com/vovakirdan/twin-golf/internal/golf/level"
	"github.com/vovakirdan/twin-golf/internal/registry"

	// Import built-in courses to register them
	_ "github.com/vovakirdan/twin-golf/internal/golf/courses"
)

var (
	// Global flags
	flagConfig   string
	flagCourses  string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
	flagNoColor  bool
)

var (
	settings       config.Settings
	settingsSource string
	logger         = log.New(io.Discard)
	logFile        *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twingolf",
	Short: "Twin Golf - two boards, one stroke",
	Long: `Twin Golf is minigolf on two boards at once. Every stroke is played on
both boards; sink both balls to reach the next hole.

Available commands:
  play     - Play a course
  menu     - Pick a course interactively
  courses  - Show all available courses
  config   - Print the effective settings

Examples:
  twingolf play
  twingolf play classic-plus
  twingolf play bank --courses ./my-courses
  twingolf config > ~/.twingolf/config.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagCourses, "courses", "", "Directory of YAML course files")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads settings, applies flag overrides, opens the logger and
// registers course files.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	settings, settingsSource, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := openLogger(cmd.Name() != "play" && cmd.Name() != "menu"); err != nil {
		return err
	}
	logger.Debug("settings loaded", "source", sourceName(settingsSource))

	if settings.Course.Dir != "" {
		registerCourseDir(settings.Course.Dir)
	}
	return nil
}

func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.Display.TickRate = flagFPS
	}
	if flags.Changed("log-level") {
		s.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		s.Log.File = flagLogFile
	}
	if flags.Changed("courses") {
		s.Course.Dir = flagCourses
	}
	if flagNoColor {
		s.Display.Color = false
	}
}

// openLogger creates the process logger. Interactive commands own the
// terminal, so without a log file their logs are discarded.
func openLogger(toStderr bool) error {
	level, err := log.ParseLevel(strings.ToLower(settings.Log.Level))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case settings.Log.File != "":
		f, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "twingolf",
		Level:           level,
	})
	return nil
}

// registerCourseDir registers every valid course file under dir. Broken
// files and duplicate IDs are logged and skipped.
func registerCourseDir(dir string) {
	loader := level.NewLoader(dir)
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping course file", "path", path, "error", err)
	}

	catalogs, err := loader.LoadAll()
	if err != nil {
		logger.Warn("cannot read course directory", "dir", dir, "error", err)
		return
	}
	for _, c := range catalogs {
		if err := registry.RegisterCatalog(c); err != nil {
			logger.Warn("skipping course", "id", c.ID, "error", err)
			continue
		}
		logger.Debug("course registered", "id", c.ID, "levels", c.Len())
	}
}

func sourceName(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}
