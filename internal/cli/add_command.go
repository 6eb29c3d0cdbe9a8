package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-analytics/internal/domain"
	"task-analytics/internal/errors"
	"task-analytics/internal/services"
)

// dueLayouts are the accepted input formats for due dates, tried in order.
var dueLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDueDate parses a user-supplied due date in local time.
func parseDueDate(value string) (time.Time, error) {
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewParseError("due", value, fmt.Errorf("expected YYYY-MM-DD with optional time"))
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Options populated from flags before Execute runs.
	Description string
	Category    string
	Priority    string
	Recurrence  string
	Due         string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: ta add \"task title\"")
	}

	input := services.NewTaskInput{
		Title:       strings.Join(args, " "),
		Description: c.Description,
		Category:    c.Category,
		Priority:    domain.Priority(c.Priority),
		Recurrence:  domain.Recurrence(c.Recurrence),
	}

	if c.Due != "" {
		due, err := parseDueDate(c.Due)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		input.DueAt = &due
	}

	task, err := c.app.api.CreateTask(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (predicted %.1f min)\n", task.ID, task.Title, task.PredictedMinutes)
	if task.IsRecurring() {
		fmt.Printf("Recurs %s\n", strings.ToLower(string(task.Recurrence)))
	}
	return nil
}
