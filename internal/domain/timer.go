package domain

import (
	"time"
)

// TimerState represents the single active work timer. It is ephemeral
// process-lifetime state and is never persisted; at most one timer may be
// active at a time.
type TimerState struct {
	TaskID    int64
	StartTime time.Time
	Token     string
}

// Elapsed returns the time the timer has been running as of now.
func (ts TimerState) Elapsed(now time.Time) time.Duration {
	return now.Sub(ts.StartTime)
}

// Remaining returns the countdown left against the given total duration,
// clamped at zero once the total has elapsed.
func (ts TimerState) Remaining(total time.Duration, now time.Time) time.Duration {
	remaining := total - ts.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
