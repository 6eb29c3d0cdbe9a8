package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"task-analytics/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the HTTP API server until interrupted.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(c.app.api, c.app.config)
	fmt.Printf("Serving on http://%s\n", c.app.config.ServerAddr())

	if err := srv.ListenAndServe(ctx); err != nil {
		return c.errorHandler.Handle("run server", err)
	}
	return nil
}
