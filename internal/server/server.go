// Package server exposes the task analytics engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-analytics/internal/api"
	"task-analytics/internal/config"
	apperrors "task-analytics/internal/errors"
	"task-analytics/internal/logging"
)

// Server is the HTTP API server.
type Server struct {
	api  api.API
	cfg  *config.Config
	http *http.Server
}

// NewServer creates a new HTTP server over the given API.
func NewServer(a api.API, cfg *config.Config) *Server {
	return &Server{api: a, cfg: cfg}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Application.Timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Get("/{id}", s.handleGetTask)
			r.Delete("/{id}", s.handleDeleteTask)
			r.Post("/{id}/complete", s.handleCompleteTask)
			r.Post("/{id}/log", s.handleLogWork)
		})

		r.Route("/timer", func(r chi.Router) {
			r.Get("/", s.handleTimerStatus)
			r.Post("/start", s.handleStartTimer)
			r.Post("/stop", s.handleStopTimer)
			r.Get("/status", s.handleTimerStatus)
		})

		r.Get("/predict", s.handlePredict)
		r.Get("/sessions", s.handleListSessions)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/daily", s.handleDailyScores)
			r.Get("/today", s.handleTodayScore)
			r.Get("/weekly", s.handleWeeklyAverage)
			r.Get("/hours", s.handleBestHours)
			r.Get("/categories", s.handleCategoryStats)
		})
	})

	if s.cfg.Server.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// ListenAndServe starts the server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerAddr(),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	logging.Debugf("server: listening on %s\n", s.http.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an application error to a JSON error response with the
// matching HTTP status.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]interface{}{
		"error": map[string]interface{}{
			"message": apperrors.GetUserMessage(err),
			"code":    apperrors.GetErrorCode(err),
		},
	})
}

// statusFor translates error categories to HTTP status codes. Unknown errors
// are treated as internal.
func statusFor(err error) int {
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeInvalidInput, apperrors.ErrorTypeParse:
			return http.StatusBadRequest
		case apperrors.ErrorTypeNotFound:
			return http.StatusNotFound
		case apperrors.ErrorTypeConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
