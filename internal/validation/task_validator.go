package validation

import (
	"task-analytics/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmedTitle := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates the fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(task domain.Task) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(task.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be one of High, Medium, Low")
	}

	if !task.Recurrence.IsValid() {
		validationError.AddInvalidValueError("recurrence", task.Recurrence, "must be one of None, Daily, Weekly")
	}

	if task.DueAt != nil && !tv.validator.IsReasonableDate(*task.DueAt) {
		validationError.AddInvalidValueError("due_at", *task.DueAt, "must be within reasonable date range")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
