package services

import (
	"time"

	"task-analytics/internal/domain"
	"task-analytics/internal/logging"
)

// recurrenceServiceImpl implements the RecurrenceService interface
type recurrenceServiceImpl struct{}

// NewRecurrenceService creates a new RecurrenceService instance
func NewRecurrenceService() RecurrenceService {
	return &recurrenceServiceImpl{}
}

// Successor builds the next occurrence of a recurring task.
// The successor copies the descriptive fields and prediction of the source,
// starts Pending, and is due one interval after the source's original due
// date. A task without a due date yields no successor; a malformed due date
// never reaches this point because due dates are parsed at the storage
// boundary, where a parse failure leaves the field absent. This lenient
// skip is a deliberate policy: a bad due date must never block a completion.
func (r *recurrenceServiceImpl) Successor(task domain.Task, now time.Time) *domain.Task {
	if !task.IsRecurring() {
		return nil
	}
	if task.DueAt == nil {
		logging.Debugf("recurrence: task %d has no due date, skipping successor\n", task.ID)
		return nil
	}

	// Calendar-day arithmetic: the successor keeps the source's wall-clock
	// time even when the interval crosses a DST transition.
	nextDue := task.DueAt.AddDate(0, 0, task.Recurrence.IntervalDays())

	return &domain.Task{
		Title:            task.Title,
		Description:      task.Description,
		Category:         task.Category,
		Priority:         task.Priority,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		DueAt:            &nextDue,
		PredictedMinutes: task.PredictedMinutes,
		Recurrence:       task.Recurrence,
	}
}
