package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDayRate              = "layout.day_rate"
	keyNightRate            = "layout.night_rate"
	keyMinExtent            = "layout.min_extent"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
)

// The default rates size a full logical day to roughly the printable height
// of an A4 page: 18 day hours at 11mm plus 6 night hours at 5.5mm.
const (
	defaultDayRate   = 11.0
	defaultNightRate = 5.5
	defaultMinExtent = 1.5
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a config file with defaults if none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDayRate, defaultDayRate)
	v.SetDefault(keyNightRate, defaultNightRate)
	v.SetDefault(keyMinExtent, defaultMinExtent)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
}
