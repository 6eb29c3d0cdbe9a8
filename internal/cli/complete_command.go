package cli

import (
	"context"
	"fmt"
	"strconv"

	"task-analytics/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Minutes worked, logged as a manual session alongside completion.
	// Zero means no session is recorded.
	Minutes float64
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: ta complete <task-id> [--minutes N]")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a numeric task ID")
	}

	var minutes *float64
	if c.Minutes > 0 {
		minutes = &c.Minutes
	}

	result, err := c.app.api.CompleteTask(ctx, id, minutes)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Printf("Completed task %d: %s\n", result.Task.ID, result.Task.Title)
	if result.Session != nil {
		fmt.Printf("Logged %.1f minutes\n", result.Session.DurationMinutes)
	}
	if result.Successor != nil {
		format := c.app.displayFormat()
		fmt.Printf("Next occurrence created (task %d, due %s)\n",
			result.Successor.ID, result.Successor.DueAt.Format(format))
	}
	return nil
}
