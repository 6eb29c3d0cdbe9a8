package sqlite

import "time"

// Task represents a row in the tasks table.
type Task struct {
	ID               int64
	Title            string
	Description      string
	Category         string
	Priority         string
	Status           string
	CreatedAt        time.Time
	DueAt            *time.Time // Using pointer to allow NULL values
	CompletedAt      *time.Time
	PredictedMinutes float64
	Recurrence       string
}

// WorkSession represents a row in the work_sessions table.
type WorkSession struct {
	ID              int64
	TaskID          int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes float64
}

// JoinedSession is a work session row joined with its owning task.
// Task fields are empty when the task has since been deleted.
type JoinedSession struct {
	WorkSession
	TaskTitle    string
	TaskCategory string
}
