// Package config provides YAML-based settings loading for twin golf.
// Physics constants are deliberately not configurable.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// Settings is the complete user configuration.
type Settings struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Course  CourseConfig  `yaml:"course"`
}

// DisplayConfig controls how boards map onto terminal cells.
type DisplayConfig struct {
	CellWidth  int  `yaml:"cell_width"`
	CellHeight int  `yaml:"cell_height"`
	TickRate   int  `yaml:"tick_rate"`
	Color      bool `yaml:"color"`
}

// InputConfig controls the keyboard stick emulation.
type InputConfig struct {
	AnalogMagnitude float64 `yaml:"analog_magnitude"`
	AimStepDegrees  float64 `yaml:"aim_step_degrees"`
}

// AudioConfig controls the terminal bell sink.
type AudioConfig struct {
	Enabled bool     `yaml:"enabled"`
	Bell    []string `yaml:"bell"` // Cue names that ring the bell
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// CourseConfig selects the course to play.
type CourseConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// Limits for display settings.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// Analog magnitudes at or below this never leave the aiming deadzone.
const minAnalogMagnitude = 37

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks settings for nonsensical values.
func (s Settings) Validate() error {
	if s.Display.CellWidth < 1 || s.Display.CellHeight < 1 {
		return fmt.Errorf("config: cell size must be at least 1x1, got %dx%d",
			s.Display.CellWidth, s.Display.CellHeight)
	}
	if s.Display.TickRate < MinTickRate || s.Display.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick_rate must be in [%d, %d], got %d",
			MinTickRate, MaxTickRate, s.Display.TickRate)
	}
	if s.Input.AnalogMagnitude < minAnalogMagnitude {
		return fmt.Errorf("config: analog_magnitude %.1f is inside the aim deadzone", s.Input.AnalogMagnitude)
	}
	if s.Input.AimStepDegrees <= 0 || s.Input.AimStepDegrees > 180 {
		return fmt.Errorf("config: aim_step_degrees must be in (0, 180], got %.1f", s.Input.AimStepDegrees)
	}
	if !validLogLevel(s.Log.Level) {
		return fmt.Errorf("config: unknown log level %q", s.Log.Level)
	}
	if s.Course.Name == "" {
		return fmt.Errorf("config: course name is required")
	}
	return nil
}

func validLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Runtime returns the runtime config for a terminal of the given size.
func (s Settings) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: s.Display.TickRate,
		CellW:    s.Display.CellWidth,
		CellH:    s.Display.CellHeight,
		Color:    s.Display.Color,
	}
}
