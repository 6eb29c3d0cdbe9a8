package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-analytics/internal/domain"
)

func TestSuccessorDaily(t *testing.T) {
	recurrence := NewRecurrenceService()

	due := time.Date(2026, 8, 28, 17, 0, 0, 0, time.Local)
	task := domain.Task{
		ID:               7,
		Title:            "Water plants",
		Description:      "The ones on the balcony",
		Category:         "Chores",
		Priority:         domain.PriorityLow,
		Status:           domain.StatusPending,
		DueAt:            &due,
		PredictedMinutes: 12.5,
		Recurrence:       domain.RecurrenceDaily,
	}

	successor := recurrence.Successor(task, testNow)
	require.NotNil(t, successor)

	assert.Equal(t, int64(0), successor.ID)
	assert.Equal(t, task.Title, successor.Title)
	assert.Equal(t, task.Description, successor.Description)
	assert.Equal(t, task.Category, successor.Category)
	assert.Equal(t, task.Priority, successor.Priority)
	assert.Equal(t, domain.StatusPending, successor.Status)
	assert.Equal(t, task.PredictedMinutes, successor.PredictedMinutes)
	assert.Equal(t, domain.RecurrenceDaily, successor.Recurrence)
	assert.Equal(t, testNow, successor.CreatedAt)

	require.NotNil(t, successor.DueAt)
	assert.True(t, successor.DueAt.Equal(due.AddDate(0, 0, 1)))
}

func TestSuccessorWeekly(t *testing.T) {
	recurrence := NewRecurrenceService()

	due := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	task := domain.Task{
		Title:      "Weekly review",
		DueAt:      &due,
		Priority:   domain.PriorityMedium,
		Status:     domain.StatusPending,
		Recurrence: domain.RecurrenceWeekly,
	}

	successor := recurrence.Successor(task, testNow)
	require.NotNil(t, successor)
	require.NotNil(t, successor.DueAt)
	assert.True(t, successor.DueAt.Equal(due.AddDate(0, 0, 7)))
}

func TestSuccessorKeepsWallClockAcrossDST(t *testing.T) {
	recurrence := NewRecurrenceService()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward: 2025-03-09 02:00 EST jumps to 03:00 EDT. A daily task
	// due at 17:00 the day before must still be due at 17:00 the day after,
	// not 18:00 as a flat 24h addition would give.
	due := time.Date(2025, 3, 8, 17, 0, 0, 0, loc)
	task := domain.Task{
		Title:      "Evening stretch",
		DueAt:      &due,
		Priority:   domain.PriorityMedium,
		Status:     domain.StatusPending,
		Recurrence: domain.RecurrenceDaily,
	}

	successor := recurrence.Successor(task, testNow)
	require.NotNil(t, successor)
	require.NotNil(t, successor.DueAt)
	assert.True(t, successor.DueAt.Equal(time.Date(2025, 3, 9, 17, 0, 0, 0, loc)))
	assert.Equal(t, 17, successor.DueAt.Hour())

	// Fall back: the weekly interval spanning 2025-11-02 keeps 09:30 too.
	weeklyDue := time.Date(2025, 10, 28, 9, 30, 0, 0, loc)
	task.DueAt = &weeklyDue
	task.Recurrence = domain.RecurrenceWeekly

	successor = recurrence.Successor(task, testNow)
	require.NotNil(t, successor)
	require.NotNil(t, successor.DueAt)
	assert.True(t, successor.DueAt.Equal(time.Date(2025, 11, 4, 9, 30, 0, 0, loc)))
}

func TestSuccessorNonRecurring(t *testing.T) {
	recurrence := NewRecurrenceService()

	due := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	task := domain.Task{
		Title:      "One-off",
		DueAt:      &due,
		Priority:   domain.PriorityMedium,
		Status:     domain.StatusPending,
		Recurrence: domain.RecurrenceNone,
	}

	assert.Nil(t, recurrence.Successor(task, testNow))
}

func TestSuccessorWithoutDueDate(t *testing.T) {
	recurrence := NewRecurrenceService()

	// A recurring task without a due date silently yields no successor.
	task := domain.Task{
		Title:      "Anchorless",
		Priority:   domain.PriorityMedium,
		Status:     domain.StatusPending,
		Recurrence: domain.RecurrenceDaily,
	}

	assert.Nil(t, recurrence.Successor(task, testNow))
}

func TestSuccessorDueDateAnchorsToOriginal(t *testing.T) {
	recurrence := NewRecurrenceService()

	// Completing late must not drift the schedule: the next due date is
	// derived from the original due date, not the completion moment.
	due := testNow.Add(-72 * time.Hour)
	task := domain.Task{
		Title:      "Overdue daily",
		DueAt:      &due,
		Priority:   domain.PriorityMedium,
		Status:     domain.StatusPending,
		Recurrence: domain.RecurrenceDaily,
	}

	successor := recurrence.Successor(task, testNow)
	require.NotNil(t, successor)
	require.NotNil(t, successor.DueAt)
	assert.True(t, successor.DueAt.Equal(due.AddDate(0, 0, 1)))
	assert.True(t, successor.DueAt.Before(testNow))
}
