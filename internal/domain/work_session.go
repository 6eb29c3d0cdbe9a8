package domain

import (
	"time"
)

// WorkSession represents a single block of logged work in the domain model.
// Sessions form an append-only log; they are never mutated or deleted, and a
// session may outlive the task it refers to.
type WorkSession struct {
	ID              int64
	TaskID          int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes float64
}

// NewWorkSession creates a WorkSession covering the given interval.
func NewWorkSession(taskID int64, start, end time.Time) WorkSession {
	return WorkSession{
		TaskID:          taskID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: end.Sub(start).Minutes(),
	}
}

// NewManualSession creates a WorkSession for a manually logged minute count.
// Manual entries use a synthetic start/end pair equal to the logging moment.
func NewManualSession(taskID int64, at time.Time, minutes float64) WorkSession {
	return WorkSession{
		TaskID:          taskID,
		StartTime:       at,
		EndTime:         at,
		DurationMinutes: minutes,
	}
}

// IsValid checks if the work session has valid data.
func (ws WorkSession) IsValid() bool {
	if ws.TaskID <= 0 {
		return false
	}
	if ws.StartTime.IsZero() || ws.EndTime.IsZero() {
		return false
	}
	if ws.EndTime.Before(ws.StartTime) {
		return false
	}
	return ws.DurationMinutes > 0
}

// JoinedSession is a work session joined with fields of its owning task.
// Tasks may have been deleted since the session was recorded, in which case
// the task fields are empty.
type JoinedSession struct {
	WorkSession
	TaskTitle    string
	TaskCategory string
}
