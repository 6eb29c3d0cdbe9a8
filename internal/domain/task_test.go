package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("Write report")

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, RecurrenceNone, task.Recurrence)
	assert.False(t, task.IsCompleted())
	assert.False(t, task.IsRecurring())
	assert.True(t, task.IsValid())
}

func TestRecurrenceIntervalDays(t *testing.T) {
	assert.Equal(t, 1, RecurrenceDaily.IntervalDays())
	assert.Equal(t, 7, RecurrenceWeekly.IntervalDays())
	assert.Equal(t, 0, RecurrenceNone.IntervalDays())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("Urgent").IsValid())

	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("Archived").IsValid())

	assert.True(t, RecurrenceWeekly.IsValid())
	assert.False(t, Recurrence("Monthly").IsValid())
}

func TestTaskIsValidCompletionConsistency(t *testing.T) {
	now := time.Now()

	// Completed status requires a completion time, and vice versa.
	completed := NewTask("Done")
	completed.Status = StatusCompleted
	assert.False(t, completed.IsValid())

	completed.CompletedAt = &now
	assert.True(t, completed.IsValid())

	pending := NewTask("Not done")
	pending.CompletedAt = &now
	assert.False(t, pending.IsValid())
}

func TestWorkSessionValidity(t *testing.T) {
	start := time.Now()

	timed := NewWorkSession(1, start, start.Add(30*time.Minute))
	assert.Equal(t, 30.0, timed.DurationMinutes)
	assert.True(t, timed.IsValid())

	manual := NewManualSession(1, start, 45)
	assert.True(t, manual.StartTime.Equal(manual.EndTime))
	assert.Equal(t, 45.0, manual.DurationMinutes)
	assert.True(t, manual.IsValid())

	zeroLength := NewWorkSession(1, start, start)
	assert.False(t, zeroLength.IsValid())
}

func TestTimerStateRemaining(t *testing.T) {
	start := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	timer := TimerState{TaskID: 1, StartTime: start}

	mid := start.Add(10 * time.Minute)
	assert.Equal(t, 10*time.Minute, timer.Elapsed(mid))
	assert.Equal(t, 15*time.Minute, timer.Remaining(25*time.Minute, mid))

	// Past the total the countdown clamps at zero.
	late := start.Add(time.Hour)
	assert.Equal(t, time.Duration(0), timer.Remaining(25*time.Minute, late))
}
