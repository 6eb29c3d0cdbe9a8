package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode string
	}{
		{
			name:     "validation error",
			err:      NewValidationError("bad input", nil),
			wantType: ErrorTypeValidation,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "not found error",
			err:      NewNotFoundError("task", "42"),
			wantType: ErrorTypeNotFound,
			wantCode: "NOT_FOUND",
		},
		{
			name:     "database error",
			err:      NewDatabaseError("insert task", stderrors.New("disk full")),
			wantType: ErrorTypeDatabase,
			wantCode: "DATABASE_ERROR",
		},
		{
			name:     "invalid input error",
			err:      NewInvalidInputError("minutes", -1, "must be positive"),
			wantType: ErrorTypeInvalidInput,
			wantCode: "INVALID_INPUT",
		},
		{
			name:     "conflict error",
			err:      NewConflictError("timer", "a timer is already active"),
			wantType: ErrorTypeConflict,
			wantCode: "CONFLICT",
		},
		{
			name:     "parse error",
			err:      NewParseError("due_at", "garbage", stderrors.New("bad layout")),
			wantType: ErrorTypeParse,
			wantCode: "PARSE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.wantType))
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.True(t, IsAppError(tt.err))
		})
	}
}

func TestErrorWrappingAndUnwrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := NewDatabaseError("query tasks", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query tasks")
	assert.Contains(t, err.Error(), "underlying failure")
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("task", "7")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "bad input", GetUserMessage(NewValidationError("bad input", nil)))
	assert.Equal(t, "task not found: 42", GetUserMessage(NewNotFoundError("task", "42")))

	// Database internals are not leaked to users.
	dbMessage := GetUserMessage(NewDatabaseError("insert", stderrors.New("constraint violated")))
	assert.NotContains(t, dbMessage, "constraint")

	plain := stderrors.New("plain error")
	assert.Equal(t, "plain error", GetUserMessage(plain))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.False(t, ShouldLogError(NewConflictError("timer", "active")))
	assert.False(t, ShouldLogError(NewParseError("due_at", "x", nil)))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(stderrors.New("unknown")))
}

func TestWithContext(t *testing.T) {
	err := NewConflictError("timer", "already active").WithContext("active_task_id", int64(3))

	value, exists := err.GetContext("active_task_id")
	require.True(t, exists)
	assert.Equal(t, int64(3), value)

	_, exists = err.GetContext("missing")
	assert.False(t, exists)
}
