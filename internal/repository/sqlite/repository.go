package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"task-analytics/internal/errors"
	"task-analytics/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible task search parameters
type SearchOptions struct {
	Status   *string
	Category *string
}

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Work session operations (append-only log)
	CreateWorkSession(ctx context.Context, session *WorkSession) error
	GetWorkSession(ctx context.Context, id int64) (*WorkSession, error)
	ListWorkSessions(ctx context.Context) ([]*WorkSession, error)
	ListJoinedSessions(ctx context.Context) ([]*JoinedSession, error)

	// CompleteTask applies a completion and its dependent writes atomically.
	CompleteTask(ctx context.Context, id int64, completedAt time.Time, session *WorkSession, successor *Task) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, title, description, category, priority, status, created_at, due_at, completed_at, predicted_minutes, recurrence`

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	id, err := insertTask(ctx, r.db, task)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// insertTask inserts a task row using the given execer so the same statement
// serves both direct creation and the completion transaction.
func insertTask(ctx context.Context, db Execer, task *Task) (int64, error) {
	query := `
	INSERT INTO tasks (title, description, category, priority, status, created_at, due_at, completed_at, predicted_minutes, recurrence)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteWithLastInsertID(ctx, db, query,
		task.Title,
		task.Description,
		task.Category,
		task.Priority,
		task.Status,
		FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.DueAt),
		FormatTimePtrForDB(task.CompletedAt),
		task.PredictedMinutes,
		task.Recurrence,
	)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// SearchTasks retrieves tasks matching the provided options
func (r *SQLiteRepository) SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error) {
	var conditions []string
	var args []interface{}

	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *opts.Category)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, category = ?, priority = ?, status = ?, created_at = ?, due_at = ?, completed_at = ?, predicted_minutes = ?, recurrence = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Title,
		task.Description,
		task.Category,
		task.Priority,
		task.Status,
		FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.DueAt),
		FormatTimePtrForDB(task.CompletedAt),
		task.PredictedMinutes,
		task.Recurrence,
		task.ID,
	)
}

// DeleteTask deletes a task by ID. Work sessions referencing the task are
// kept; the session log is append-only and the reference is weak.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// CreateWorkSession appends a new work session
func (r *SQLiteRepository) CreateWorkSession(ctx context.Context, session *WorkSession) error {
	id, err := insertWorkSession(ctx, r.db, session)
	if err != nil {
		return err
	}
	session.ID = id
	return nil
}

func insertWorkSession(ctx context.Context, db Execer, session *WorkSession) (int64, error) {
	query := `
	INSERT INTO work_sessions (task_id, start_time, end_time, duration_minutes)
	VALUES (?, ?, ?, ?)`

	return ExecuteWithLastInsertID(ctx, db, query,
		session.TaskID,
		FormatTimeForDB(session.StartTime),
		FormatTimeForDB(session.EndTime),
		session.DurationMinutes,
	)
}

// GetWorkSession retrieves a work session by ID
func (r *SQLiteRepository) GetWorkSession(ctx context.Context, id int64) (*WorkSession, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes
	FROM work_sessions
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanWorkSession, "work session", fmt.Sprintf("%d", id), id)
}

// ListWorkSessions retrieves all work sessions
func (r *SQLiteRepository) ListWorkSessions(ctx context.Context) ([]*WorkSession, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes
	FROM work_sessions
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanWorkSessions, "work sessions")
}

// ListJoinedSessions retrieves all work sessions joined with their owning
// task's title and category. The LEFT JOIN keeps sessions whose task has
// been deleted.
func (r *SQLiteRepository) ListJoinedSessions(ctx context.Context) ([]*JoinedSession, error) {
	query := `
	SELECT ws.id, ws.task_id, ws.start_time, ws.end_time, ws.duration_minutes, t.title, t.category
	FROM work_sessions ws
	LEFT JOIN tasks t ON ws.task_id = t.id
	ORDER BY ws.start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanJoinedSessions, "joined sessions")
}

// CompleteTask marks a task completed and applies the optional dependent
// writes (logged session, recurrence successor) in a single transaction.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64, completedAt time.Time, session *WorkSession, successor *Task) error {
	return ExecuteInTransaction(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`
		if err := ExecuteWithRowsAffected(ctx, tx, query, "task", fmt.Sprintf("%d", id),
			"Completed", FormatTimeForDB(completedAt), id); err != nil {
			return err
		}

		if session != nil {
			sessionID, err := insertWorkSession(ctx, tx, session)
			if err != nil {
				return err
			}
			session.ID = sessionID
		}

		if successor != nil {
			successorID, err := insertTask(ctx, tx, successor)
			if err != nil {
				return err
			}
			successor.ID = successorID
		}

		return nil
	})
}
