package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional TOML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFromFile merges the TOML config file into the configuration.
// A missing file is not an error; defaults apply.
func (l *Loader) loadFromFile() error {
	path := l.config.GetConfigFilePath()
	if override := os.Getenv("TA_CONFIG_FILE"); override != "" {
		path = override
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if _, err := toml.DecodeFile(path, l.config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// Pomodoro overrides
	PomodoroMinutes *int

	// Server overrides
	ServerHost *string
	ServerPort *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.PomodoroMinutes != nil {
		config.Pomodoro.Minutes = *overrides.PomodoroMinutes
	}
	if overrides.ServerHost != nil {
		config.Server.Host = *overrides.ServerHost
	}
	if overrides.ServerPort != nil {
		config.Server.Port = *overrides.ServerPort
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
