// Package config loads lift's settings from the config file and command-line
// flags
package config

import (
	"io"
	"os"

	"github.com/ayoisaiah/lift/internal/recommend"
)

type (
	// Config holds all configuration settings
	Config struct {
		Recommend     RecommendConfig
		Display       DisplayConfig
		Insights      InsightsConfig
		Notifications NotificationConfig
		Settings      SettingsConfig
		Log           LogConfig
		System        SystemConfig
	}

	// RecommendConfig holds the progressive overload thresholds
	RecommendConfig struct {
		Increment float64
		HighReps  float64
		LowReps   float64
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Unit           string
		DarkTheme      bool
		TwentyFourHour bool
		NoColor        bool
	}

	// InsightsConfig holds the rolling insights settings
	InsightsConfig struct {
		WindowDays int
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// FinishCmd is executed after a workout is saved
		FinishCmd string
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	UnitKg = "kg"
	UnitLb = "lb"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records where lift's files are located.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath
		c.System.DBPath = dbPath
		c.System.LogPath = logPath

		return nil
	}
}

// Rules returns the progressive overload rules.
func (c *Config) Rules() recommend.Rules {
	return recommend.Rules{
		Increment: c.Recommend.Increment,
		HighReps:  c.Recommend.HighReps,
		LowReps:   c.Recommend.LowReps,
		Unit:      c.Display.Unit,
	}
}

// TimeFormat returns the layout used to print the time of a workout.
func (c *Config) TimeFormat() string {
	if c.Display.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}
