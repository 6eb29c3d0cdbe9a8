package validation

import (
	"strings"
	"time"

	"task-analytics/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks if a task title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, v.getTitleMinLength(), v.getTitleMaxLength())
}

// IsPositiveMinutes checks if a minute count is strictly positive
func (v *Validator) IsPositiveMinutes(minutes float64) bool {
	return minutes > 0
}

// IsValidMinutes checks if a minute count is positive and within reasonable bounds
func (v *Validator) IsValidMinutes(minutes float64) bool {
	return minutes > 0 && minutes <= v.getMaxSessionMinutes()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidTimeRange checks if start time is not after end time
func (v *Validator) IsValidTimeRange(startTime, endTime time.Time) bool {
	return !endTime.Before(startTime)
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 10 years in the future (due dates may
	// be scheduled well ahead)
	tenYearsAgo := now.AddDate(-10, 0, 0)
	tenYearsFromNow := now.AddDate(10, 0, 0)

	return t.After(tenYearsAgo) && t.Before(tenYearsFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTitleMinLength returns configured minimum title length or default
func (v *Validator) getTitleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1 // Default minimum
}

// getTitleMaxLength returns configured maximum title length or default
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255 // Default maximum
}

// getMaxSessionMinutes returns configured maximum session minutes or default
func (v *Validator) getMaxSessionMinutes() float64 {
	if v.config != nil {
		return v.config.Validation.MaxSessionMinutes
	}
	return 24 * 60 // Default maximum: one day of minutes
}
