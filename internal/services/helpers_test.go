package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-analytics/internal/repository/sqlite"
)

// testNow is the fixed clock used across service tests.
var testNow = time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)

func newTestRepo(t *testing.T) sqlite.Repository {
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// seedTask inserts a pending task and returns its ID.
func seedTask(t *testing.T, repo sqlite.Repository, title, category string) int64 {
	task := &sqlite.Task{
		Title:      title,
		Category:   category,
		Priority:   "Medium",
		Status:     "Pending",
		CreatedAt:  testNow.Add(-24 * time.Hour),
		Recurrence: "None",
	}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task.ID
}

// seedSession inserts a work session starting at the given time.
func seedSession(t *testing.T, repo sqlite.Repository, taskID int64, start time.Time, minutes float64) {
	session := &sqlite.WorkSession{
		TaskID:          taskID,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}
	require.NoError(t, repo.CreateWorkSession(context.Background(), session))
}
