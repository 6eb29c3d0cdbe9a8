package cli

import (
	"context"
	"fmt"
	"strings"

	"task-analytics/internal/domain"
	"task-analytics/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command. The default view is pending tasks;
// "completed" switches to the completion history.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	view := "pending"
	if len(args) > 0 {
		view = strings.ToLower(args[0])
	}

	switch view {
	case "pending":
		tasks, err := c.app.api.ListPendingTasks(ctx)
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		return c.printPending(tasks)
	case "completed":
		tasks, err := c.app.api.ListCompletedTasks(ctx)
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		return c.printCompleted(tasks)
	default:
		return errors.NewInvalidInputError("view", view, "must be pending or completed")
	}
}

func (c *ListCommand) printPending(tasks []*domain.Task) error {
	if len(tasks) == 0 {
		fmt.Println("No pending tasks")
		return nil
	}

	format := c.app.displayFormat()
	for _, task := range tasks {
		line := fmt.Sprintf("%d. [%s] %s", task.ID, task.Priority, task.Title)
		if task.Category != "" {
			line += fmt.Sprintf(" (%s)", task.Category)
		}
		line += fmt.Sprintf(" — predicted %.1f min", task.PredictedMinutes)
		if task.DueAt != nil {
			line += fmt.Sprintf(", due %s", task.DueAt.Format(format))
		}
		if task.IsRecurring() {
			line += fmt.Sprintf(", recurs %s", strings.ToLower(string(task.Recurrence)))
		}
		fmt.Println(line)
	}
	return nil
}

func (c *ListCommand) printCompleted(tasks []*domain.Task) error {
	if len(tasks) == 0 {
		fmt.Println("No completed tasks")
		return nil
	}

	format := c.app.displayFormat()
	for _, task := range tasks {
		line := fmt.Sprintf("%d. %s", task.ID, task.Title)
		if task.Category != "" {
			line += fmt.Sprintf(" (%s)", task.Category)
		}
		if task.CompletedAt != nil {
			line += fmt.Sprintf(" — completed %s", task.CompletedAt.Format(format))
		}
		fmt.Println(line)
	}
	return nil
}
