package cli

import (
	"context"
	"fmt"
	"strconv"

	"task-analytics/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. Work sessions for the task are kept so
// historical statistics stay intact.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: ta delete <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a numeric task ID")
	}

	if err := c.app.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}
