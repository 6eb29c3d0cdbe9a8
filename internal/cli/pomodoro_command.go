package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"task-analytics/internal/errors"
)

// PomodoroCommand handles the pomodoro timer commands
type PomodoroCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPomodoroCommand creates a new pomodoro command handler
func NewPomodoroCommand(app *App) *PomodoroCommand {
	return &PomodoroCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// sessionLength returns the configured pomodoro length.
func (c *PomodoroCommand) sessionLength() time.Duration {
	minutes := 25
	if c.app.config != nil && c.app.config.Pomodoro.Minutes > 0 {
		minutes = c.app.config.Pomodoro.Minutes
	}
	return time.Duration(minutes) * time.Minute
}

// Start begins a pomodoro for the given task.
func (c *PomodoroCommand) Start(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "pomodoro start", "usage: ta pomodoro start <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a numeric task ID")
	}

	state, err := c.app.api.StartTimer(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("start pomodoro", err)
	}

	fmt.Printf("Pomodoro started for task %d (%s)\n", state.TaskID, formatCountdown(c.sessionLength()))
	return nil
}

// Status shows the countdown for the active pomodoro.
func (c *PomodoroCommand) Status(ctx context.Context, args []string) error {
	state := c.app.api.TimerStatus()
	if state == nil {
		fmt.Println("No pomodoro running")
		return nil
	}

	now := timeNow()
	remaining := state.Remaining(c.sessionLength(), now)
	if remaining == 0 {
		fmt.Printf("Task %d: time's up! (%s elapsed)\n", state.TaskID, formatCountdown(state.Elapsed(now)))
		return nil
	}
	fmt.Printf("Task %d: %s remaining\n", state.TaskID, formatCountdown(remaining))
	return nil
}

// Stop ends the pomodoro and records the elapsed work session.
func (c *PomodoroCommand) Stop(ctx context.Context, args []string) error {
	session, err := c.app.api.StopTimer(ctx, true)
	if err != nil {
		return c.errorHandler.Handle("stop pomodoro", err)
	}
	if session == nil {
		fmt.Println("No pomodoro running")
		return nil
	}

	fmt.Printf("Pomodoro stopped: logged %.1f minutes on task %d\n", session.DurationMinutes, session.TaskID)
	return nil
}

// Cancel ends the pomodoro without recording a session.
func (c *PomodoroCommand) Cancel(ctx context.Context, args []string) error {
	hadTimer := c.app.api.TimerStatus() != nil
	if _, err := c.app.api.StopTimer(ctx, false); err != nil {
		return c.errorHandler.Handle("cancel pomodoro", err)
	}

	if !hadTimer {
		fmt.Println("No pomodoro running")
		return nil
	}
	fmt.Println("Pomodoro cancelled; nothing was logged")
	return nil
}

// formatCountdown renders a duration as MM:SS.
func formatCountdown(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
