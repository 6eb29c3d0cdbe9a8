package domain

import (
	"time"
)

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Recurrence represents how a task repeats after completion.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "None"
	RecurrenceDaily  Recurrence = "Daily"
	RecurrenceWeekly Recurrence = "Weekly"
)

// IsValid checks if the recurrence is one of the known values.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// IntervalDays returns the gap between occurrences in calendar days, or zero
// for non-recurring tasks. The gap is counted in days rather than hours so a
// successor keeps the source's wall-clock time across DST transitions.
func (r Recurrence) IntervalDays() int {
	switch r {
	case RecurrenceDaily:
		return 1
	case RecurrenceWeekly:
		return 7
	}
	return 0
}

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID               int64
	Title            string
	Description      string
	Category         string
	Priority         Priority
	Status           Status
	CreatedAt        time.Time
	DueAt            *time.Time
	CompletedAt      *time.Time
	PredictedMinutes float64
	Recurrence       Recurrence
}

// NewTask creates a pending Task with the given title.
func NewTask(title string) Task {
	return Task{
		Title:      title,
		Priority:   PriorityMedium,
		Status:     StatusPending,
		Recurrence: RecurrenceNone,
	}
}

// IsCompleted returns true if the task has been completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsRecurring returns true if completing the task should spawn a successor.
func (t Task) IsRecurring() bool {
	return t.Recurrence != RecurrenceNone && t.Recurrence.IsValid()
}

// IsValid checks if the task has valid data.
// CompletedAt must be set exactly when the status is Completed.
func (t Task) IsValid() bool {
	if t.Title == "" {
		return false
	}
	if !t.Priority.IsValid() || !t.Status.IsValid() || !t.Recurrence.IsValid() {
		return false
	}
	if t.IsCompleted() != (t.CompletedAt != nil) {
		return false
	}
	return true
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
