package api

import (
	"context"

	"task-analytics/internal/domain"
	"task-analytics/internal/repository/sqlite"
	"task-analytics/internal/services"
)

// API is the single entry point presentation layers use. It fronts the
// engine services; callers never touch the repository directly.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, input services.NewTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListPendingTasks(ctx context.Context) ([]*domain.Task, error)
	ListCompletedTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Session lifecycle operations
	CompleteTask(ctx context.Context, id int64, loggedMinutes *float64) (*services.CompletionResult, error)
	LogWork(ctx context.Context, id int64, minutes float64) (*domain.WorkSession, error)
	ListSessions(ctx context.Context) ([]*domain.JoinedSession, error)

	// Timer operations
	StartTimer(ctx context.Context, taskID int64) (*domain.TimerState, error)
	StopTimer(ctx context.Context, save bool) (*domain.WorkSession, error)
	TimerStatus() *domain.TimerState

	// Prediction operations
	Predict(ctx context.Context, category string) (float64, error)
	CategoryAverages(ctx context.Context) ([]services.CategoryAverage, error)

	// Productivity statistics
	DailyScores(ctx context.Context) ([]services.DailyScore, error)
	TodayScore(ctx context.Context) (float64, error)
	WeeklyAverageScore(ctx context.Context) (float64, error)
	BestHours(ctx context.Context, topN int) ([]services.HourBucket, error)
	CategoryTotals(ctx context.Context) (map[string]float64, error)
}

type apiImpl struct {
	repo     sqlite.Repository
	mapper   *domain.Mapper
	services *services.ServiceContainer
}

// New creates a new API instance wired to the given repository.
func New(repo sqlite.Repository) API {
	estimator := services.NewEstimatorService(repo)
	recurrence := services.NewRecurrenceService()

	return &apiImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		services: &services.ServiceContainer{
			TaskService:       services.NewTaskService(repo, estimator),
			EstimatorService:  estimator,
			RecurrenceService: recurrence,
			ScoringService:    services.NewScoringService(repo),
			LifecycleService:  services.NewLifecycleService(repo, recurrence),
		},
	}
}

func (a *apiImpl) CreateTask(ctx context.Context, input services.NewTaskInput) (*domain.Task, error) {
	return a.services.TaskService.CreateTask(ctx, input)
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return a.services.TaskService.GetTask(ctx, id)
}

func (a *apiImpl) ListPendingTasks(ctx context.Context) ([]*domain.Task, error) {
	return a.services.TaskService.ListPendingTasks(ctx)
}

func (a *apiImpl) ListCompletedTasks(ctx context.Context) ([]*domain.Task, error) {
	return a.services.TaskService.ListCompletedTasks(ctx)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	return a.services.TaskService.DeleteTask(ctx, id)
}

func (a *apiImpl) CompleteTask(ctx context.Context, id int64, loggedMinutes *float64) (*services.CompletionResult, error) {
	return a.services.LifecycleService.CompleteTask(ctx, id, loggedMinutes)
}

func (a *apiImpl) LogWork(ctx context.Context, id int64, minutes float64) (*domain.WorkSession, error) {
	return a.services.LifecycleService.LogWork(ctx, id, minutes)
}

// ListSessions returns the full session history joined with task titles and
// categories, oldest first.
func (a *apiImpl) ListSessions(ctx context.Context) ([]*domain.JoinedSession, error) {
	dbSessions, err := a.repo.ListJoinedSessions(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.WorkSession.JoinedFromDatabaseSlice(dbSessions), nil
}

func (a *apiImpl) StartTimer(ctx context.Context, taskID int64) (*domain.TimerState, error) {
	return a.services.LifecycleService.StartTimer(ctx, taskID)
}

func (a *apiImpl) StopTimer(ctx context.Context, save bool) (*domain.WorkSession, error) {
	return a.services.LifecycleService.StopTimer(ctx, save)
}

func (a *apiImpl) TimerStatus() *domain.TimerState {
	return a.services.LifecycleService.TimerStatus()
}

func (a *apiImpl) Predict(ctx context.Context, category string) (float64, error) {
	return a.services.EstimatorService.Predict(ctx, category)
}

func (a *apiImpl) CategoryAverages(ctx context.Context) ([]services.CategoryAverage, error) {
	return a.services.EstimatorService.CategoryAverages(ctx)
}

func (a *apiImpl) DailyScores(ctx context.Context) ([]services.DailyScore, error) {
	return a.services.ScoringService.DailyScores(ctx)
}

func (a *apiImpl) TodayScore(ctx context.Context) (float64, error) {
	return a.services.ScoringService.TodayScore(ctx)
}

func (a *apiImpl) WeeklyAverageScore(ctx context.Context) (float64, error) {
	return a.services.ScoringService.WeeklyAverageScore(ctx)
}

func (a *apiImpl) BestHours(ctx context.Context, topN int) ([]services.HourBucket, error) {
	return a.services.ScoringService.BestHours(ctx, topN)
}

func (a *apiImpl) CategoryTotals(ctx context.Context) (map[string]float64, error) {
	return a.services.ScoringService.CategoryTotals(ctx)
}
