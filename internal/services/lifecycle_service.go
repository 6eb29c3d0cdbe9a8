package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-analytics/internal/domain"
	"task-analytics/internal/errors"
	"task-analytics/internal/logging"
	"task-analytics/internal/metrics"
	"task-analytics/internal/repository/sqlite"
	"task-analytics/internal/validation"
)

// lifecycleServiceImpl implements the LifecycleService interface.
// It owns the process-wide timer singleton: the timer is an explicit optional
// value behind a mutex, not a package global, so instances stay testable in
// isolation and two timers can never be active at once.
type lifecycleServiceImpl struct {
	repo             sqlite.Repository
	recurrence       RecurrenceService
	mapper           *domain.Mapper
	taskValidator    *validation.TaskValidator
	sessionValidator *validation.SessionValidator
	nowFunc          func() time.Time

	mu    sync.Mutex
	timer *domain.TimerState
}

// NewLifecycleService creates a new LifecycleService instance
func NewLifecycleService(repo sqlite.Repository, recurrence RecurrenceService) LifecycleService {
	return &lifecycleServiceImpl{
		repo:             repo,
		recurrence:       recurrence,
		mapper:           domain.NewMapper(),
		taskValidator:    validation.NewTaskValidator(),
		sessionValidator: validation.NewSessionValidator(),
		nowFunc:          time.Now,
	}
}

// CompleteTask marks a task completed, optionally logs a manual work session,
// and spawns the successor of a recurring task. The status update and both
// optional inserts are applied in a single transaction.
//
// A present but non-positive minute count logs nothing; minutes are optional
// here and only strictly positive values produce a session. The successor is
// derived from the task's pre-completion field values, including its
// original due date.
func (l *lifecycleServiceImpl) CompleteTask(ctx context.Context, id int64, loggedMinutes *float64) (*CompletionResult, error) {
	if err := l.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := l.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := l.mapper.Task.FromDatabase(*dbTask)

	if task.IsCompleted() {
		return nil, errors.NewValidationError("task already completed", nil)
	}

	now := l.nowFunc()

	var session *domain.WorkSession
	if loggedMinutes != nil && *loggedMinutes > 0 {
		manual := domain.NewManualSession(id, now, *loggedMinutes)
		session = &manual
	}

	successor := l.recurrence.Successor(task, now)

	var dbSession *sqlite.WorkSession
	if session != nil {
		mapped := l.mapper.WorkSession.ToDatabase(*session)
		dbSession = &mapped
	}
	var dbSuccessor *sqlite.Task
	if successor != nil {
		mapped := l.mapper.Task.ToDatabase(*successor)
		dbSuccessor = &mapped
	}

	if err := l.repo.CompleteTask(ctx, id, now, dbSession, dbSuccessor); err != nil {
		return nil, err
	}

	task.Status = domain.StatusCompleted
	task.CompletedAt = &now
	result := &CompletionResult{Task: &task}

	if dbSession != nil {
		logged := l.mapper.WorkSession.FromDatabase(*dbSession)
		result.Session = &logged
		metrics.SessionsLogged.WithLabelValues("manual").Inc()
	}
	if dbSuccessor != nil {
		spawned := l.mapper.Task.FromDatabase(*dbSuccessor)
		result.Successor = &spawned
		metrics.RecurrencesSpawned.WithLabelValues(string(spawned.Recurrence)).Inc()
	}

	metrics.TasksCompleted.WithLabelValues(string(task.Recurrence)).Inc()
	logging.Debugf("lifecycle: completed task %d (session=%v successor=%v)\n", id, result.Session != nil, result.Successor != nil)

	return result, nil
}

// LogWork appends a manual work session without completing the task.
// The minute count must be strictly positive.
func (l *lifecycleServiceImpl) LogWork(ctx context.Context, id int64, minutes float64) (*domain.WorkSession, error) {
	if err := l.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if err := l.sessionValidator.ValidateLoggedMinutes(minutes); err != nil {
		return nil, errors.NewValidationError("invalid minute count", err)
	}

	if _, err := l.repo.GetTask(ctx, id); err != nil {
		return nil, err
	}

	session := domain.NewManualSession(id, l.nowFunc(), minutes)
	dbSession := l.mapper.WorkSession.ToDatabase(session)
	if err := l.repo.CreateWorkSession(ctx, &dbSession); err != nil {
		return nil, err
	}

	logged := l.mapper.WorkSession.FromDatabase(dbSession)
	metrics.SessionsLogged.WithLabelValues("manual").Inc()
	return &logged, nil
}

// StartTimer activates the work timer for a task. Only one timer may run at
// a time; a second start fails with a conflict. The returned state carries a
// token presentation layers can use to correlate status polls with this
// start event.
func (l *lifecycleServiceImpl) StartTimer(ctx context.Context, taskID int64) (*domain.TimerState, error) {
	if err := l.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	if _, err := l.repo.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		return nil, errors.NewConflictError("timer", "a timer is already active").
			WithContext("active_task_id", l.timer.TaskID)
	}

	l.timer = &domain.TimerState{
		TaskID:    taskID,
		StartTime: l.nowFunc(),
		Token:     uuid.NewString(),
	}
	metrics.TimerActive.Set(1)

	state := *l.timer
	return &state, nil
}

// StopTimer clears the active timer. With save set, the elapsed interval is
// recorded as a work session with a one-minute floor, so sub-minute timers
// still count. Without an active timer this is a no-op.
func (l *lifecycleServiceImpl) StopTimer(ctx context.Context, save bool) (*domain.WorkSession, error) {
	l.mu.Lock()
	timer := l.timer
	l.timer = nil
	metrics.TimerActive.Set(0)
	l.mu.Unlock()

	if timer == nil || !save {
		return nil, nil
	}

	now := l.nowFunc()
	minutes := now.Sub(timer.StartTime).Minutes()
	if minutes < 1 {
		minutes = 1
	}

	session := domain.WorkSession{
		TaskID:          timer.TaskID,
		StartTime:       timer.StartTime,
		EndTime:         now,
		DurationMinutes: minutes,
	}

	dbSession := l.mapper.WorkSession.ToDatabase(session)
	if err := l.repo.CreateWorkSession(ctx, &dbSession); err != nil {
		return nil, err
	}

	saved := l.mapper.WorkSession.FromDatabase(dbSession)
	metrics.SessionsLogged.WithLabelValues("timer").Inc()
	return &saved, nil
}

// TimerStatus returns a copy of the active timer state, or nil when no timer
// is running.
func (l *lifecycleServiceImpl) TimerStatus() *domain.TimerState {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer == nil {
		return nil
	}
	state := *l.timer
	return &state
}
