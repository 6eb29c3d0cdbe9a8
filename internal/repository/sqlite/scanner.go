package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row.
// Timestamps are stored as text in the local offset-free layout, so they are
// scanned into strings and parsed explicitly.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description, category sql.NullString
	var createdAt string
	var dueAt, completedAt sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&description,
		&category,
		&task.Priority,
		&task.Status,
		&createdAt,
		&dueAt,
		&completedAt,
		&task.PredictedMinutes,
		&task.Recurrence,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	task.Category = category.String

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	// A malformed due date degrades to absent instead of failing the read.
	// Downstream policy treats a task without a due date leniently (no
	// recurrence successor), so a bad value must never block an operation.
	if parsed, parseErr := ParseTimePtrFromDB(dueAt.String); parseErr == nil {
		task.DueAt = parsed
	}
	if task.CompletedAt, err = ParseTimePtrFromDB(completedAt.String); err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanWorkSession scans a single work session from a database row
func ScanWorkSession(scanner Scanner) (*WorkSession, error) {
	session := &WorkSession{}
	var startTime, endTime string

	err := scanner.Scan(
		&session.ID,
		&session.TaskID,
		&startTime,
		&endTime,
		&session.DurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	if session.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if session.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}

	return session, nil
}

// ScanWorkSessions scans multiple work sessions from database rows
func ScanWorkSessions(rows Rows) ([]*WorkSession, error) {
	var sessions []*WorkSession
	for rows.Next() {
		session, err := ScanWorkSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// ScanJoinedSession scans a work session joined with its task fields.
// The join is a LEFT JOIN, so task fields may be NULL for orphaned sessions.
func ScanJoinedSession(scanner Scanner) (*JoinedSession, error) {
	joined := &JoinedSession{}
	var startTime, endTime string
	var title, category sql.NullString

	err := scanner.Scan(
		&joined.ID,
		&joined.TaskID,
		&startTime,
		&endTime,
		&joined.DurationMinutes,
		&title,
		&category,
	)
	if err != nil {
		return nil, err
	}

	if joined.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if joined.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}

	joined.TaskTitle = title.String
	joined.TaskCategory = category.String

	return joined, nil
}

// ScanJoinedSessions scans multiple joined sessions from database rows
func ScanJoinedSessions(rows Rows) ([]*JoinedSession, error) {
	var sessions []*JoinedSession
	for rows.Next() {
		session, err := ScanJoinedSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
