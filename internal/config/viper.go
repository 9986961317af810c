package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config file keys.
const (
	keyIncrement            = "recommend.increment"
	keyHighReps             = "recommend.high_reps"
	keyLowReps              = "recommend.low_reps"
	keyUnit                 = "display.unit"
	keyTwentyFourHour       = "display.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyWindowDays           = "insights.window_days"
	keyNotificationsEnabled = "notifications.enabled"
	keyFinishCmd            = "settings.finish_cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath, creating it with the defaults if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			loadViperConfig(v, c)
			return nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		loadViperConfig(v, c)

		return nil
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyIncrement, 2.5)
	v.SetDefault(keyHighReps, 10)
	v.SetDefault(keyLowReps, 6)
	v.SetDefault(keyUnit, UnitKg)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyWindowDays, 28)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyFinishCmd, "")
	v.SetDefault(keyLogLevel, "info")

	if c.Display.Unit != "" {
		v.Set(keyUnit, c.Display.Unit)
	}

	if c.Recommend.Increment != 0 {
		v.Set(keyIncrement, c.Recommend.Increment)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) {
	c.Recommend = RecommendConfig{
		Increment: v.GetFloat64(keyIncrement),
		HighReps:  v.GetFloat64(keyHighReps),
		LowReps:   v.GetFloat64(keyLowReps),
	}

	c.Display.Unit = v.GetString(keyUnit)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Insights.WindowDays = v.GetInt(keyWindowDays)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Settings.FinishCmd = v.GetString(keyFinishCmd)
	c.Log.Level = v.GetString(keyLogLevel)
}
