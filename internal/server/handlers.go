package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"task-analytics/internal/domain"
	apperrors "task-analytics/internal/errors"
	"task-analytics/internal/services"
)

// taskIDParam parses the {id} route parameter.
func taskIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("id", raw, "must be a numeric task ID")
	}
	return id, nil
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var input services.NewTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperrors.NewParseError("body", nil, err))
		return
	}

	task, err := s.api.CreateTask(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// handleListTasks lists tasks by status. The default view is pending tasks;
// ?status=completed switches to the completion history.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []*domain.Task
		err   error
	)

	switch status := r.URL.Query().Get("status"); status {
	case "", "pending":
		tasks, err = s.api.ListPendingTasks(r.Context())
	case "completed":
		tasks, err = s.api.ListCompletedTasks(r.Context())
	default:
		writeError(w, apperrors.NewInvalidInputError("status", status, "must be pending or completed"))
		return
	}

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := s.api.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.api.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// completeRequest is the optional body of a completion call.
type completeRequest struct {
	Minutes *float64 `json:"minutes"`
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.NewParseError("body", nil, err))
			return
		}
	}

	result, err := s.api.CompleteTask(r.Context(), id, req.Minutes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type logWorkRequest struct {
	Minutes float64 `json:"minutes"`
}

func (s *Server) handleLogWork(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req logWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewParseError("body", nil, err))
		return
	}

	session, err := s.api.LogWork(r.Context(), id, req.Minutes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.api.ListSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

type startTimerRequest struct {
	TaskID int64 `json:"task_id"`
}

func (s *Server) handleStartTimer(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewParseError("body", nil, err))
		return
	}

	state, err := s.api.StartTimer(r.Context(), req.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

type stopTimerRequest struct {
	Save *bool `json:"save"`
}

// handleStopTimer stops the active timer. Saving the elapsed session is the
// default; {"save": false} discards it.
func (s *Server) handleStopTimer(w http.ResponseWriter, r *http.Request) {
	save := true
	if r.Body != nil && r.ContentLength != 0 {
		var req stopTimerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.NewParseError("body", nil, err))
			return
		}
		if req.Save != nil {
			save = *req.Save
		}
	}

	session, err := s.api.StopTimer(r.Context(), save)
	if err != nil {
		writeError(w, err)
		return
	}

	if session == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"session": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}

func (s *Server) handleTimerStatus(w http.ResponseWriter, r *http.Request) {
	state := s.api.TimerStatus()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active": state != nil,
		"timer":  state,
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	predicted, err := s.api.Predict(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category":          category,
		"predicted_minutes": predicted,
	})
}

func (s *Server) handleDailyScores(w http.ResponseWriter, r *http.Request) {
	scores, err := s.api.DailyScores(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scores": scores})
}

func (s *Server) handleTodayScore(w http.ResponseWriter, r *http.Request) {
	score, err := s.api.TodayScore(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"score": score})
}

func (s *Server) handleWeeklyAverage(w http.ResponseWriter, r *http.Request) {
	score, err := s.api.WeeklyAverageScore(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"weekly_average": score})
}

func (s *Server) handleBestHours(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, apperrors.NewInvalidInputError("top", raw, "must be an integer"))
			return
		}
		topN = n
	}

	buckets, err := s.api.BestHours(r.Context(), topN)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"hours": buckets})
}

// handleCategoryStats reports both total and average minutes per category.
func (s *Server) handleCategoryStats(w http.ResponseWriter, r *http.Request) {
	totals, err := s.api.CategoryTotals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	averages, err := s.api.CategoryAverages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totals":   totals,
		"averages": averages,
	})
}
