package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatorPredictWithoutHistory(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)

	predicted, err := estimator.Predict(context.Background(), "Writing")
	require.NoError(t, err)
	assert.Equal(t, DefaultPredictedMinutes, predicted)
}

func TestEstimatorPredictOwnCategoryMean(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)
	ctx := context.Background()

	writingID := seedTask(t, repo, "Draft essay", "Writing")
	seedSession(t, repo, writingID, testNow.Add(-3*time.Hour), 30)
	seedSession(t, repo, writingID, testNow.Add(-2*time.Hour), 60)

	choresID := seedTask(t, repo, "Water plants", "Chores")
	seedSession(t, repo, choresID, testNow.Add(-time.Hour), 10)

	predicted, err := estimator.Predict(ctx, "Writing")
	require.NoError(t, err)
	assert.Equal(t, 45.0, predicted)
}

func TestEstimatorPredictFallsBackToMeanOfMeans(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)
	ctx := context.Background()

	// Writing mean 45, Chores mean 10. An unseen category gets the
	// unweighted mean of means, not the mean of all sessions.
	writingID := seedTask(t, repo, "Draft essay", "Writing")
	seedSession(t, repo, writingID, testNow.Add(-4*time.Hour), 30)
	seedSession(t, repo, writingID, testNow.Add(-3*time.Hour), 60)

	choresID := seedTask(t, repo, "Water plants", "Chores")
	seedSession(t, repo, choresID, testNow.Add(-time.Hour), 10)

	predicted, err := estimator.Predict(ctx, "Exercise")
	require.NoError(t, err)
	assert.Equal(t, 27.5, predicted)
}

func TestEstimatorPredictRounding(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)

	id := seedTask(t, repo, "Odd durations", "Focus")
	seedSession(t, repo, id, testNow.Add(-3*time.Hour), 10)
	seedSession(t, repo, id, testNow.Add(-2*time.Hour), 11)
	seedSession(t, repo, id, testNow.Add(-time.Hour), 11)

	predicted, err := estimator.Predict(context.Background(), "Focus")
	require.NoError(t, err)
	assert.Equal(t, 10.7, predicted)
}

func TestEstimatorUncategorizedGroupsSeparately(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)
	ctx := context.Background()

	uncategorizedID := seedTask(t, repo, "Misc", "")
	seedSession(t, repo, uncategorizedID, testNow.Add(-2*time.Hour), 20)

	writingID := seedTask(t, repo, "Draft", "Writing")
	seedSession(t, repo, writingID, testNow.Add(-time.Hour), 50)

	predicted, err := estimator.Predict(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 20.0, predicted)
}

func TestEstimatorOrphanSessionsCountAsUncategorized(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)
	ctx := context.Background()

	// Deleting a task orphans its sessions; they keep feeding the empty
	// category's mean instead of vanishing from the history.
	orphanedID := seedTask(t, repo, "Gone soon", "Writing")
	seedSession(t, repo, orphanedID, testNow.Add(-2*time.Hour), 40)
	require.NoError(t, repo.DeleteTask(ctx, orphanedID))

	uncategorizedID := seedTask(t, repo, "Misc", "")
	seedSession(t, repo, uncategorizedID, testNow.Add(-time.Hour), 20)

	predicted, err := estimator.Predict(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 30.0, predicted)
}

func TestCategoryAverages(t *testing.T) {
	repo := newTestRepo(t)
	estimator := NewEstimatorService(repo)

	writingID := seedTask(t, repo, "Draft", "Writing")
	seedSession(t, repo, writingID, testNow.Add(-2*time.Hour), 45)

	choresID := seedTask(t, repo, "Tidy", "Chores")
	seedSession(t, repo, choresID, testNow.Add(-time.Hour), 10)

	averages, err := estimator.CategoryAverages(context.Background())
	require.NoError(t, err)
	require.Len(t, averages, 2)

	// Sorted by category name.
	assert.Equal(t, "Chores", averages[0].Category)
	assert.Equal(t, 10.0, averages[0].AvgMinutes)
	assert.Equal(t, "Writing", averages[1].Category)
	assert.Equal(t, 45.0, averages[1].AvgMinutes)
}
