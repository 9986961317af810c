package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Unit          string
	FinishCmd     string
	Days          int
	Debug         bool
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that overrides file settings with the
// command-line flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Unit:          ctx.String("unit"),
			FinishCmd:     ctx.String("finish-cmd"),
			Days:          ctx.Int("days"),
			Debug:         ctx.Bool("debug"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Unit != "" {
		c.Display.Unit = strings.ToLower(strings.TrimSpace(opts.Unit))
	}

	if opts.FinishCmd != "" {
		c.Settings.FinishCmd = opts.FinishCmd
	}

	if opts.Days > 0 {
		c.Insights.WindowDays = opts.Days
	}

	if opts.Debug {
		c.Log.Level = "debug"
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}
}
