package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-analytics/internal/domain"
	"task-analytics/internal/errors"
	"task-analytics/internal/repository/sqlite"
)

func setupTaskService(t *testing.T, repo sqlite.Repository) TaskService {
	service := NewTaskService(repo, NewEstimatorService(repo))
	service.(*taskServiceImpl).nowFunc = func() time.Time { return testNow }
	return service
}

func TestTaskServiceCreateTask(t *testing.T) {
	tests := []struct {
		name           string
		input          NewTaskInput
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:  "should create task with defaults",
			input: NewTaskInput{Title: "Write report"},
		},
		{
			name: "should create task with explicit fields",
			input: NewTaskInput{
				Title:      "Water plants",
				Category:   "Chores",
				Priority:   domain.PriorityLow,
				Recurrence: domain.RecurrenceDaily,
			},
		},
		{
			name:  "should return validation error for empty title",
			input: NewTaskInput{Title: ""},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should return validation error for whitespace-only title",
			input: NewTaskInput{Title: "   "},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should return validation error for very long title",
			input: NewTaskInput{Title: strings.Repeat("x", 300)},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should reject unknown priority",
			input: NewTaskInput{Title: "Bad priority", Priority: domain.Priority("Urgent")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should reject unknown recurrence",
			input: NewTaskInput{Title: "Bad recurrence", Recurrence: domain.Recurrence("Monthly")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			service := setupTaskService(t, repo)

			result, err := service.CreateTask(context.Background(), tt.input)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Greater(t, result.ID, int64(0))
			assert.Equal(t, domain.StatusPending, result.Status)
			assert.True(t, result.Priority.IsValid())
			assert.True(t, result.Recurrence.IsValid())
			if tt.input.Priority == "" {
				assert.Equal(t, domain.PriorityMedium, result.Priority)
			}
		})
	}
}

func TestTaskServiceCreateTaskTrimsTitle(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)

	result, err := service.CreateTask(context.Background(), NewTaskInput{Title: "  Padded title  "})
	require.NoError(t, err)
	assert.Equal(t, "Padded title", result.Title)
}

func TestTaskServiceCreateTaskPredictsEffort(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)
	ctx := context.Background()

	// No history: default estimate.
	blind, err := service.CreateTask(ctx, NewTaskInput{Title: "First ever", Category: "Writing"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPredictedMinutes, blind.PredictedMinutes)

	// With history the category mean wins.
	seedSession(t, repo, blind.ID, testNow.Add(-2*time.Hour), 90)

	informed, err := service.CreateTask(ctx, NewTaskInput{Title: "Second", Category: "Writing"})
	require.NoError(t, err)
	assert.Equal(t, 90.0, informed.PredictedMinutes)
}

func TestTaskServiceGetTask(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, NewTaskInput{Title: "Fetch me"})
	require.NoError(t, err)

	fetched, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Fetch me", fetched.Title)

	_, err = service.GetTask(ctx, 999)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = service.GetTask(ctx, 0)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestTaskServiceListPendingTasks(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)
	ctx := context.Background()

	first, err := service.CreateTask(ctx, NewTaskInput{Title: "First"})
	require.NoError(t, err)
	_, err = service.CreateTask(ctx, NewTaskInput{Title: "Second"})
	require.NoError(t, err)

	require.NoError(t, repo.CompleteTask(ctx, first.ID, testNow, nil, nil))

	pending, err := service.ListPendingTasks(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Second", pending[0].Title)
}

func TestTaskServiceListCompletedTasksOrder(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)
	ctx := context.Background()

	older, err := service.CreateTask(ctx, NewTaskInput{Title: "Finished first"})
	require.NoError(t, err)
	newer, err := service.CreateTask(ctx, NewTaskInput{Title: "Finished last"})
	require.NoError(t, err)

	require.NoError(t, repo.CompleteTask(ctx, older.ID, testNow.Add(-2*time.Hour), nil, nil))
	require.NoError(t, repo.CompleteTask(ctx, newer.ID, testNow.Add(-time.Hour), nil, nil))

	completed, err := service.ListCompletedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 2)

	// Most recently completed first.
	assert.Equal(t, "Finished last", completed[0].Title)
	assert.Equal(t, "Finished first", completed[1].Title)
}

func TestTaskServiceDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	service := setupTaskService(t, repo)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, NewTaskInput{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, created.ID))

	_, err = service.GetTask(ctx, created.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = service.DeleteTask(ctx, 999)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
