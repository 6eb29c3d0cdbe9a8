// Package metrics provides Prometheus metrics for the analytics engine.
// Counters cover the engine's write paths; the timer gauge tracks the
// process-wide pomodoro singleton.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TasksCreated tracks created tasks by priority.
var TasksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ta",
	Name:      "tasks_created_total",
	Help:      "Total tasks created.",
}, []string{"priority"})

// TasksCompleted tracks completed tasks by recurrence.
var TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ta",
	Name:      "tasks_completed_total",
	Help:      "Total tasks completed.",
}, []string{"recurrence"})

// RecurrencesSpawned tracks successor tasks created by recurrence.
var RecurrencesSpawned = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ta",
	Name:      "recurrences_spawned_total",
	Help:      "Total successor tasks spawned for recurring tasks.",
}, []string{"recurrence"})

// SessionsLogged tracks appended work sessions by source (manual or timer).
var SessionsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ta",
	Name:      "sessions_logged_total",
	Help:      "Total work sessions logged.",
}, []string{"source"})

// TimerActive tracks whether the pomodoro timer is currently running.
var TimerActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ta",
	Name:      "timer_active",
	Help:      "1 when the work timer is running, 0 otherwise.",
})
