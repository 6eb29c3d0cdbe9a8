package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task analytics application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Time        TimeConfig        `toml:"time"`
	Validation  ValidationConfig  `toml:"validation"`
	Pomodoro    PomodoroConfig    `toml:"pomodoro"`
	Server      ServerConfig      `toml:"server"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `toml:"dir" env:"TA_DB_DIR"`
	Filename       string        `toml:"filename" env:"TA_DB_FILENAME"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TA_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TA_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TA_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `toml:"display_format" env:"TA_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength    int     `toml:"title_min_length" env:"TA_VALIDATION_TITLE_MIN"`
	TitleMaxLength    int     `toml:"title_max_length" env:"TA_VALIDATION_TITLE_MAX"`
	MaxSessionMinutes float64 `toml:"max_session_minutes" env:"TA_VALIDATION_MAX_SESSION_MINUTES"`
}

// PomodoroConfig holds the presentation-layer timer settings
type PomodoroConfig struct {
	Minutes int `toml:"minutes" env:"TA_POMODORO_MINUTES"`
}

// ServerConfig holds the HTTP API server configuration
type ServerConfig struct {
	Host            string        `toml:"host" env:"TA_SERVER_HOST"`
	Port            int           `toml:"port" env:"TA_SERVER_PORT"`
	Metrics         bool          `toml:"metrics" env:"TA_SERVER_METRICS"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"TA_SERVER_SHUTDOWN_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TA_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TA_APP_VERBOSE"`
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Message)
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".ta")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			TitleMinLength:    1,
			TitleMaxLength:    255,
			MaxSessionMinutes: 24 * 60,
		},
		Pomodoro: PomodoroConfig{
			Minutes: 25,
		},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8799,
			Metrics:         true,
			ShutdownTimeout: 5 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetConfigFilePath returns the path of the optional TOML config file
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.Database.Dir, "config.toml")
}

// ServerAddr returns the host:port the HTTP server listens on
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TA_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TA_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TA_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TA_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TA_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Time configuration
	if format := os.Getenv("TA_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("TA_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TA_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxMins := os.Getenv("TA_VALIDATION_MAX_SESSION_MINUTES"); maxMins != "" {
		if m, err := strconv.ParseFloat(maxMins, 64); err == nil {
			c.Validation.MaxSessionMinutes = m
		}
	}

	// Pomodoro configuration
	if mins := os.Getenv("TA_POMODORO_MINUTES"); mins != "" {
		if n, err := strconv.Atoi(mins); err == nil {
			c.Pomodoro.Minutes = n
		}
	}

	// Server configuration
	if host := os.Getenv("TA_SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("TA_SERVER_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			c.Server.Port = n
		}
	}
	if metrics := os.Getenv("TA_SERVER_METRICS"); metrics != "" {
		if b, err := strconv.ParseBool(metrics); err == nil {
			c.Server.Metrics = b
		}
	}
	if timeout := os.Getenv("TA_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("TA_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TA_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}
	if c.Validation.MaxSessionMinutes <= 0 {
		return &ConfigError{Field: "validation.max_session_minutes", Message: "maximum session minutes must be positive"}
	}

	if c.Pomodoro.Minutes <= 0 {
		return &ConfigError{Field: "pomodoro.minutes", Message: "pomodoro minutes must be positive"}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "server port must be between 1 and 65535"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "server shutdown timeout must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}
