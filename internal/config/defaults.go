package config

import (
	_ "embed"
)

//go:embed defaults/twingolf.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
			TickRate:   60,
			Color:      true,
		},
		Input: InputConfig{
			AnalogMagnitude: 100,
			AimStepDegrees:  15,
		},
		Audio: AudioConfig{
			Enabled: true,
			Bell:    []string{"swing", "hole"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Course: CourseConfig{
			Name: "classic",
		},
	}
}
