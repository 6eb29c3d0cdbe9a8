package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-analytics/internal/domain"
)

func TestValidateTitle(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Write report", wantErr: false},
		{name: "minimum length", title: "T", wantErr: false},
		{name: "empty title", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "too long", title: strings.Repeat("x", 300), wantErr: true},
		{name: "maximum length", title: strings.Repeat("x", 255), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "Trimmed", title)

	_, err = validator.GetValidTitle("   ")
	assert.Error(t, err)
}

func TestValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	valid := domain.NewTask("Write report")
	assert.NoError(t, validator.ValidateTaskForCreation(valid))

	badPriority := domain.NewTask("Bad priority")
	badPriority.Priority = domain.Priority("Urgent")
	assert.Error(t, validator.ValidateTaskForCreation(badPriority))

	badRecurrence := domain.NewTask("Bad recurrence")
	badRecurrence.Recurrence = domain.Recurrence("Monthly")
	assert.Error(t, validator.ValidateTaskForCreation(badRecurrence))

	farFuture := time.Now().AddDate(20, 0, 0)
	badDue := domain.NewTask("Distant due date")
	badDue.DueAt = &farFuture
	assert.Error(t, validator.ValidateTaskForCreation(badDue))

	nearDue := time.Now().AddDate(0, 1, 0)
	okDue := domain.NewTask("Reasonable due date")
	okDue.DueAt = &nearDue
	assert.NoError(t, validator.ValidateTaskForCreation(okDue))
}

func TestValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))
	assert.Error(t, validator.ValidateTaskID(0))
	assert.Error(t, validator.ValidateTaskID(-5))
}
