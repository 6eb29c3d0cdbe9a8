package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-analytics/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func pendingTask(title string) *Task {
	return &Task{
		Title:      title,
		Priority:   "Medium",
		Status:     "Pending",
		CreatedAt:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local),
		Recurrence: "None",
	}
}

func TestCreateAndGetTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	due := time.Date(2026, 8, 10, 17, 0, 0, 0, time.Local)
	task := pendingTask("Write report")
	task.Description = "Quarterly numbers"
	task.Category = "Writing"
	task.DueAt = &due
	task.PredictedMinutes = 42.5

	err := repo.CreateTask(ctx, task)
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, retrieved.Title)
	assert.Equal(t, task.Description, retrieved.Description)
	assert.Equal(t, task.Category, retrieved.Category)
	assert.Equal(t, "Pending", retrieved.Status)
	assert.Equal(t, 42.5, retrieved.PredictedMinutes)
	require.NotNil(t, retrieved.DueAt)
	assert.True(t, retrieved.DueAt.Equal(due))
	assert.Nil(t, retrieved.CompletedAt)
}

func TestGetTaskNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTask(context.Background(), 999)
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSearchTasksByStatus(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	open := pendingTask("Open task")
	require.NoError(t, repo.CreateTask(ctx, open))

	completedAt := time.Date(2026, 8, 2, 12, 0, 0, 0, time.Local)
	done := pendingTask("Done task")
	done.Status = "Completed"
	done.CompletedAt = &completedAt
	require.NoError(t, repo.CreateTask(ctx, done))

	status := "Pending"
	tasks, err := repo.SearchTasks(ctx, SearchOptions{Status: &status})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Open task", tasks[0].Title)

	status = "Completed"
	tasks, err = repo.SearchTasks(ctx, SearchOptions{Status: &status})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Done task", tasks[0].Title)
	require.NotNil(t, tasks[0].CompletedAt)
}

func TestSearchTasksByCategory(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	writing := pendingTask("Draft essay")
	writing.Category = "Writing"
	require.NoError(t, repo.CreateTask(ctx, writing))

	chores := pendingTask("Water plants")
	chores.Category = "Chores"
	require.NoError(t, repo.CreateTask(ctx, chores))

	category := "Chores"
	tasks, err := repo.SearchTasks(ctx, SearchOptions{Category: &category})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Water plants", tasks[0].Title)
}

func TestDeleteTaskKeepsSessions(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := pendingTask("Ephemeral")
	require.NoError(t, repo.CreateTask(ctx, task))

	start := time.Date(2026, 8, 3, 10, 0, 0, 0, time.Local)
	session := &WorkSession{
		TaskID:          task.ID,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DurationMinutes: 30,
	}
	require.NoError(t, repo.CreateWorkSession(ctx, session))

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	_, err := repo.GetTask(ctx, task.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// The session survives as an orphan with empty task fields.
	joined, err := repo.ListJoinedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, task.ID, joined[0].TaskID)
	assert.Equal(t, "", joined[0].TaskTitle)
}

func TestListJoinedSessionsOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := pendingTask("Ordered work")
	task.Category = "Focus"
	require.NoError(t, repo.CreateTask(ctx, task))

	later := time.Date(2026, 8, 4, 15, 0, 0, 0, time.Local)
	earlier := time.Date(2026, 8, 4, 9, 0, 0, 0, time.Local)
	for _, start := range []time.Time{later, earlier} {
		session := &WorkSession{
			TaskID:          task.ID,
			StartTime:       start,
			EndTime:         start.Add(time.Hour),
			DurationMinutes: 60,
		}
		require.NoError(t, repo.CreateWorkSession(ctx, session))
	}

	joined, err := repo.ListJoinedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 2)
	assert.True(t, joined[0].StartTime.Before(joined[1].StartTime))
	assert.Equal(t, "Ordered work", joined[0].TaskTitle)
	assert.Equal(t, "Focus", joined[0].TaskCategory)
}

func TestCompleteTaskTransaction(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	due := time.Date(2026, 8, 5, 17, 0, 0, 0, time.Local)
	task := pendingTask("Water plants")
	task.Recurrence = "Daily"
	task.DueAt = &due
	require.NoError(t, repo.CreateTask(ctx, task))

	completedAt := time.Date(2026, 8, 5, 18, 0, 0, 0, time.Local)
	session := &WorkSession{
		TaskID:          task.ID,
		StartTime:       completedAt,
		EndTime:         completedAt,
		DurationMinutes: 15,
	}
	nextDue := due.AddDate(0, 0, 1)
	successor := pendingTask("Water plants")
	successor.Recurrence = "Daily"
	successor.DueAt = &nextDue

	err := repo.CompleteTask(ctx, task.ID, completedAt, session, successor)
	require.NoError(t, err)
	assert.Greater(t, session.ID, int64(0))
	assert.Greater(t, successor.ID, int64(0))

	completed, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.CompletedAt.Equal(completedAt))

	spawned, err := repo.GetTask(ctx, successor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", spawned.Status)
	require.NotNil(t, spawned.DueAt)
	assert.True(t, spawned.DueAt.Equal(nextDue))

	sessions, err := repo.ListWorkSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestCompleteTaskRollsBackOnMissingTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	completedAt := time.Date(2026, 8, 5, 18, 0, 0, 0, time.Local)
	session := &WorkSession{
		TaskID:          42,
		StartTime:       completedAt,
		EndTime:         completedAt,
		DurationMinutes: 15,
	}

	err := repo.CompleteTask(ctx, 42, completedAt, session, nil)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Nothing from the failed completion may persist.
	sessions, err := repo.ListWorkSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestCompleteTaskWithoutOptionalWrites(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := pendingTask("Plain completion")
	require.NoError(t, repo.CreateTask(ctx, task))

	completedAt := time.Date(2026, 8, 6, 11, 0, 0, 0, time.Local)
	require.NoError(t, repo.CompleteTask(ctx, task.ID, completedAt, nil, nil))

	completed, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", completed.Status)

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestGetTaskToleratesMalformedDueDate(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := pendingTask("Bad due date")
	require.NoError(t, repo.CreateTask(ctx, task))

	_, err := repo.db.ExecContext(ctx, `UPDATE tasks SET due_at = 'next tuesday' WHERE id = ?`, task.ID)
	require.NoError(t, err)

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.DueAt)
}

func TestUpdateTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := pendingTask("Original")
	require.NoError(t, repo.CreateTask(ctx, task))

	task.Title = "Renamed"
	task.Priority = "High"
	require.NoError(t, repo.UpdateTask(ctx, task))

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", retrieved.Title)
	assert.Equal(t, "High", retrieved.Priority)
}
