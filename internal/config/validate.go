package config

import (
	"log/slog"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	// Weight increment constraints.
	maxIncrement = 50.0

	// Valid insight windows.
	minWindowDays = 1
	maxWindowDays = 365
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if c.Insights.WindowDays < minWindowDays ||
		c.Insights.WindowDays > maxWindowDays {
		return errInvalidWindow.Fmt(
			minWindowDays,
			maxWindowDays,
			c.Insights.WindowDays,
		)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Settings.FinishCmd != "" {
		if _, err := shellquote.Split(c.Settings.FinishCmd); err != nil {
			return errInvalidFinishCmd.Wrap(err)
		}
	}

	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend

	if r.Increment <= 0 || r.Increment > maxIncrement {
		return errInvalidIncrement.Fmt(maxIncrement, r.Increment)
	}

	if r.LowReps < 0 {
		return errNegativeReps.Fmt(r.LowReps)
	}

	if r.HighReps <= r.LowReps {
		return errInvalidRepRange.Fmt(r.HighReps, r.LowReps)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Unit {
	case UnitKg, UnitLb:
		return nil
	default:
		return errInvalidUnit.Fmt(c.Display.Unit)
	}
}

// ParseLevel converts a log level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errInvalidLogLevel.Fmt(s)
	}
}
