package cli

import (
	"context"
	"fmt"
)

// SessionsCommand handles the sessions command
type SessionsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSessionsCommand creates a new sessions command handler
func NewSessionsCommand(app *App) *SessionsCommand {
	return &SessionsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the sessions command, printing the full work log oldest first.
func (c *SessionsCommand) Execute(ctx context.Context, args []string) error {
	sessions, err := c.app.api.ListSessions(ctx)
	if err != nil {
		return c.errorHandler.Handle("list sessions", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No work sessions recorded yet")
		return nil
	}

	format := c.app.displayFormat()
	for _, session := range sessions {
		title := session.TaskTitle
		if title == "" {
			// Orphaned session; its task was deleted.
			title = fmt.Sprintf("task %d (deleted)", session.TaskID)
		}
		fmt.Printf("%s  %6.1f min  %s\n", session.StartTime.Format(format), session.DurationMinutes, title)
	}
	return nil
}
