package domain

import (
	"task-analytics/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Category:         task.Category,
		Priority:         string(task.Priority),
		Status:           string(task.Status),
		CreatedAt:        task.CreatedAt,
		DueAt:            task.DueAt,
		CompletedAt:      task.CompletedAt,
		PredictedMinutes: task.PredictedMinutes,
		Recurrence:       string(task.Recurrence),
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:               dbTask.ID,
		Title:            dbTask.Title,
		Description:      dbTask.Description,
		Category:         dbTask.Category,
		Priority:         Priority(dbTask.Priority),
		Status:           Status(dbTask.Status),
		CreatedAt:        dbTask.CreatedAt,
		DueAt:            dbTask.DueAt,
		CompletedAt:      dbTask.CompletedAt,
		PredictedMinutes: dbTask.PredictedMinutes,
		Recurrence:       Recurrence(dbTask.Recurrence),
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	tasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task := m.FromDatabase(*dbTask)
		tasks[i] = &task
	}
	return tasks
}

// WorkSessionMapper handles conversion between domain and database WorkSession models.
type WorkSessionMapper struct{}

// NewWorkSessionMapper creates a new WorkSessionMapper instance.
func NewWorkSessionMapper() *WorkSessionMapper {
	return &WorkSessionMapper{}
}

// ToDatabase converts a domain WorkSession to a database WorkSession.
func (m *WorkSessionMapper) ToDatabase(session WorkSession) sqlite.WorkSession {
	return sqlite.WorkSession{
		ID:              session.ID,
		TaskID:          session.TaskID,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		DurationMinutes: session.DurationMinutes,
	}
}

// FromDatabase converts a database WorkSession to a domain WorkSession.
func (m *WorkSessionMapper) FromDatabase(dbSession sqlite.WorkSession) WorkSession {
	return WorkSession{
		ID:              dbSession.ID,
		TaskID:          dbSession.TaskID,
		StartTime:       dbSession.StartTime,
		EndTime:         dbSession.EndTime,
		DurationMinutes: dbSession.DurationMinutes,
	}
}

// JoinedFromDatabase converts a database JoinedSession to a domain JoinedSession.
func (m *WorkSessionMapper) JoinedFromDatabase(dbJoined sqlite.JoinedSession) JoinedSession {
	return JoinedSession{
		WorkSession:  m.FromDatabase(dbJoined.WorkSession),
		TaskTitle:    dbJoined.TaskTitle,
		TaskCategory: dbJoined.TaskCategory,
	}
}

// JoinedFromDatabaseSlice converts a slice of database JoinedSessions to domain ones.
func (m *WorkSessionMapper) JoinedFromDatabaseSlice(dbJoined []*sqlite.JoinedSession) []*JoinedSession {
	joined := make([]*JoinedSession, len(dbJoined))
	for i, dbSession := range dbJoined {
		session := m.JoinedFromDatabase(*dbSession)
		joined[i] = &session
	}
	return joined
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(opts SearchOptions) sqlite.SearchOptions {
	dbOpts := sqlite.SearchOptions{
		Category: opts.Category,
	}
	if opts.Status != nil {
		status := string(*opts.Status)
		dbOpts.Status = &status
	}
	return dbOpts
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task          *TaskMapper
	WorkSession   *WorkSessionMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:          NewTaskMapper(),
		WorkSession:   NewWorkSessionMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
