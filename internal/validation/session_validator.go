package validation

import (
	"time"

	"task-analytics/internal/domain"
)

// SessionValidator provides validation for WorkSession-related operations
type SessionValidator struct {
	validator *Validator
}

// NewSessionValidator creates a new work session validator
func NewSessionValidator() *SessionValidator {
	return &SessionValidator{
		validator: NewValidator(),
	}
}

// ValidateLoggedMinutes validates a manually entered minute count
func (sv *SessionValidator) ValidateLoggedMinutes(minutes float64) error {
	validationError := NewValidationError()

	if !sv.validator.IsPositiveMinutes(minutes) {
		validationError.AddInvalidValueError("minutes", minutes, "must be a positive number")
		return validationError
	}

	if !sv.validator.IsValidMinutes(minutes) {
		validationError.AddInvalidRangeError("minutes", minutes, "exceeds the maximum session length")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSessionForCreation validates a work session before it is appended
func (sv *SessionValidator) ValidateSessionForCreation(taskID int64, startTime, endTime time.Time, minutes float64) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidTaskID(taskID) {
		validationError.AddInvalidValueError("task_id", taskID, "must be a positive integer")
	}

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	}
	if endTime.IsZero() {
		validationError.AddRequiredError("end_time")
	}

	if !startTime.IsZero() && !endTime.IsZero() && !sv.validator.IsValidTimeRange(startTime, endTime) {
		validationError.AddInvalidRangeError("time_range", map[string]time.Time{
			"start": startTime,
			"end":   endTime,
		}, "end time must not be before start time")
	}

	if !sv.validator.IsPositiveMinutes(minutes) {
		validationError.AddInvalidValueError("duration_minutes", minutes, "must be a positive number")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSession validates a domain.WorkSession object
func (sv *SessionValidator) ValidateSession(session domain.WorkSession) error {
	return sv.ValidateSessionForCreation(session.TaskID, session.StartTime, session.EndTime, session.DurationMinutes)
}
