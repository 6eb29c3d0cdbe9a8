package cli

import (
	"context"
	"fmt"
	"strconv"

	"task-analytics/internal/errors"
)

// LogCommand handles the log command
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "log", "usage: ta log <task-id> <minutes>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a numeric task ID")
	}

	minutes, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.NewInvalidInputError("minutes", args[1], "must be a number of minutes")
	}

	session, err := c.app.api.LogWork(ctx, id, minutes)
	if err != nil {
		return c.errorHandler.Handle("log work", err)
	}

	fmt.Printf("Logged %.1f minutes on task %d\n", session.DurationMinutes, session.TaskID)
	return nil
}
