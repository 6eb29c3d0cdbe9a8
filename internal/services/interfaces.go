package services

import (
	"context"
	"time"

	"task-analytics/internal/domain"
)

// DefaultPredictedMinutes is the estimate used when no session history exists.
const DefaultPredictedMinutes = 30.0

// ScoreTargetMinutes is the daily minute total that maps to a 100-point score.
const ScoreTargetMinutes = 240.0

// ScoreCap bounds the daily score, allowing modest over-achievement credit.
const ScoreCap = 120.0

// DefaultBestHoursTopN is the number of hour buckets returned by default.
const DefaultBestHoursTopN = 3

// NewTaskInput holds the caller-supplied fields for task creation.
// The predicted minutes are computed by the estimator, never supplied.
type NewTaskInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Priority    domain.Priority   `json:"priority"`
	Recurrence  domain.Recurrence `json:"recurrence"`
	DueAt       *time.Time        `json:"due_at"`
}

// CompletionResult reports everything a task completion produced.
type CompletionResult struct {
	Task      *domain.Task        `json:"task"`
	Session   *domain.WorkSession `json:"session,omitempty"`
	Successor *domain.Task        `json:"successor,omitempty"`
}

// DailyScore is one day's aggregated work with its productivity score.
type DailyScore struct {
	Date         time.Time `json:"date"`
	TotalMinutes float64   `json:"total_minutes"`
	Score        float64   `json:"score"`
}

// HourBucket is the total work logged in one hour-of-day bucket.
type HourBucket struct {
	Hour         int     `json:"hour"`
	Label        string  `json:"label"` // "HH:00-HH:59"
	TotalMinutes float64 `json:"total_minutes"`
}

// CategoryAverage is the mean session length for one category.
type CategoryAverage struct {
	Category   string  `json:"category"`
	AvgMinutes float64 `json:"avg_minutes"`
}

// TaskService handles task creation and queries
type TaskService interface {
	CreateTask(ctx context.Context, input NewTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListPendingTasks(ctx context.Context) ([]*domain.Task, error)
	ListCompletedTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// EstimatorService predicts task effort from historical session data
type EstimatorService interface {
	// Predict estimates expected effort in minutes for a category.
	Predict(ctx context.Context, category string) (float64, error)

	// CategoryAverages returns the mean session minutes per category,
	// sorted by category name.
	CategoryAverages(ctx context.Context) ([]CategoryAverage, error)
}

// RecurrenceService derives successor tasks for recurring tasks
type RecurrenceService interface {
	// Successor builds the next occurrence of a recurring task, or nil when
	// the task does not recur or its due date is absent. The successor is
	// not persisted.
	Successor(task domain.Task, now time.Time) *domain.Task
}

// ScoringService aggregates session history into productivity statistics
type ScoringService interface {
	DailyScores(ctx context.Context) ([]DailyScore, error)
	TodayScore(ctx context.Context) (float64, error)
	WeeklyAverageScore(ctx context.Context) (float64, error)
	BestHours(ctx context.Context, topN int) ([]HourBucket, error)
	CategoryTotals(ctx context.Context) (map[string]float64, error)
}

// LifecycleService orchestrates task completion, work logging and the timer
type LifecycleService interface {
	CompleteTask(ctx context.Context, id int64, loggedMinutes *float64) (*CompletionResult, error)
	LogWork(ctx context.Context, id int64, minutes float64) (*domain.WorkSession, error)

	StartTimer(ctx context.Context, taskID int64) (*domain.TimerState, error)
	StopTimer(ctx context.Context, save bool) (*domain.WorkSession, error)
	TimerStatus() *domain.TimerState
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService       TaskService
	EstimatorService  EstimatorService
	RecurrenceService RecurrenceService
	ScoringService    ScoringService
	LifecycleService  LifecycleService
}
