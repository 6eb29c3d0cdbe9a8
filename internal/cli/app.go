package cli

import (
	"time"

	"task-analytics/internal/api"
	"task-analytics/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the dependencies command handlers need.
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// displayFormat returns the configured timestamp display format.
func (a *App) displayFormat() string {
	if a.config != nil && a.config.Time.DisplayFormat != "" {
		return a.config.Time.DisplayFormat
	}
	return "2006-01-02 15:04:05"
}
