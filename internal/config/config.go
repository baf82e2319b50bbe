// Package config loads and provides access to the timeflow configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Layout       LayoutConfig       `mapstructure:"layout"`
		Display      DisplayConfig      `mapstructure:"display"`
		Notification NotificationConfig `mapstructure:"notifications"`
		Settings     SettingsConfig     `mapstructure:"settings"`
	}

	// LayoutConfig holds the vertical scale of the printed timeline chart.
	// Daytime hours (07:00 through 00:59) get DayRate units per hour, the
	// compressed overnight hours (01:00 through 06:59) get NightRate.
	LayoutConfig struct {
		DayRate   float64 `mapstructure:"day_rate"`
		NightRate float64 `mapstructure:"night_rate"`
		MinExtent float64 `mapstructure:"min_extent"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous behaviour settings.
	SettingsConfig struct {
		// SessionCmd is an optional command executed after a session is
		// recorded.
		SessionCmd string `mapstructure:"cmd"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "timeflow"
	configFileName = "config.yml"
	dbFileName     = "timeflow.db"
	logFileName    = "timeflow.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations
// through XDG. A TIMEFLOW_ENV value isolates the files for testing.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("TIMEFLOW_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("timeflow_%s.db", env)
		logFileName = fmt.Sprintf("timeflow_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}
