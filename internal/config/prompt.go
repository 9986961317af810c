package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗     ██╗███████╗████████╗
██║     ██║██╔════╝╚══██╔══╝
██║     ██║█████╗     ██║
██║     ██║██╔══╝     ██║
███████╗██║██║        ██║
╚══════╝╚═╝╚═╝        ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Unit      string
	Increment float64
}

// WithPromptConfig returns an Option that asks for the initial settings when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure lift for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'lift edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weight unit").
				Options(
					huh.NewOption("Kilograms (kg)", UnitKg).Selected(true),
					huh.NewOption("Pounds (lb)", UnitLb),
				).
				Value(&opts.Unit),
		),
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Weight increment when progressing").
				Options(
					huh.NewOption("1.25", 1.25),
					huh.NewOption("2.5", 2.5).Selected(true),
					huh.NewOption("5", 5.0),
				).
				Value(&opts.Increment),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.Unit = opts.Unit
	c.Recommend.Increment = opts.Increment
}
