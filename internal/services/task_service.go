package services

import (
	"context"
	"sort"
	"time"

	"task-analytics/internal/domain"
	"task-analytics/internal/errors"
	"task-analytics/internal/metrics"
	"task-analytics/internal/repository/sqlite"
	"task-analytics/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	estimator     EstimatorService
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	nowFunc       func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, estimator EstimatorService) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		estimator:     estimator,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		nowFunc:       time.Now,
	}
}

// CreateTask validates the input, computes the effort prediction for the
// task's category and persists the new pending task. The prediction is
// immutable after creation.
func (t *taskServiceImpl) CreateTask(ctx context.Context, input NewTaskInput) (*domain.Task, error) {
	title, err := t.taskValidator.GetValidTitle(input.Title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	task := domain.NewTask(title)
	task.Description = input.Description
	task.Category = input.Category
	task.DueAt = input.DueAt
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.Recurrence != "" {
		task.Recurrence = input.Recurrence
	}

	if err := t.taskValidator.ValidateTaskForCreation(task); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	predicted, err := t.estimator.Predict(ctx, task.Category)
	if err != nil {
		return nil, err
	}
	task.PredictedMinutes = predicted
	task.CreatedAt = t.nowFunc()

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	metrics.TasksCreated.WithLabelValues(string(created.Priority)).Inc()
	return &created, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListPendingTasks returns all pending tasks in creation order.
func (t *taskServiceImpl) ListPendingTasks(ctx context.Context) ([]*domain.Task, error) {
	return t.listByStatus(ctx, domain.StatusPending)
}

// ListCompletedTasks returns completed tasks, most recently completed first.
func (t *taskServiceImpl) ListCompletedTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := t.listByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		// CompletedAt is always set on completed tasks; guard anyway.
		if tasks[i].CompletedAt == nil || tasks[j].CompletedAt == nil {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CompletedAt.After(*tasks[j].CompletedAt)
	})

	return tasks, nil
}

func (t *taskServiceImpl) listByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	opts := domain.SearchOptions{Status: &status}
	dbTasks, err := t.repo.SearchTasks(ctx, t.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// DeleteTask removes a task. Its work sessions are kept; the session log is
// append-only and references tasks weakly.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	return t.repo.DeleteTask(ctx, id)
}
