package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-analytics/internal/api"
	"task-analytics/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	api    api.API
	closer func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "ta",
		Short: "A command-line task tracker with effort prediction and productivity analytics",
		Long: `Task Analytics (ta) tracks your tasks and the time you spend on them,
predicts how long new tasks will take from your history, and scores your
daily productivity.

FEATURES:
  • Add, list, complete and delete tasks with priorities and categories
  • Effort prediction from your logged work history, per category
  • Recurring tasks: completing a daily or weekly task spawns the next one
  • Manual work logging and a built-in pomodoro timer
  • Daily productivity scores, weekly averages and best-hours analysis
  • An optional HTTP API with Prometheus metrics

EXAMPLES:
  ta add "Write report" --category Writing --due 2026-09-01   # Add a task
  ta add "Water plants" --recurrence Daily --due 2026-08-29   # Recurring task
  ta list                                  # List pending tasks
  ta list completed                        # List completion history
  ta complete 3 --minutes 45               # Complete a task, logging 45 minutes
  ta log 3 30                              # Log 30 minutes without completing
  ta predict Writing                       # Predicted effort for a category
  ta pomodoro start 3                      # Start a focus timer
  ta stats                                 # Productivity scores and breakdowns
  ta hours                                 # Your most productive hours
  ta serve                                 # Run the HTTP API

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment
  variables > config file (~/.ta/config.toml) > defaults

  Database Configuration:
    TA_DB_DIR                              Database directory (default: ~/.ta)
    TA_DB_FILENAME                         Database filename (default: tasks.db)

  Timer Configuration:
    TA_POMODORO_MINUTES                    Pomodoro length (default: 25)

  Server Configuration:
    TA_SERVER_HOST                         Bind host (default: 127.0.0.1)
    TA_SERVER_PORT                         Bind port (default: 8799)
    TA_SERVER_METRICS                      Expose /metrics (default: true)

  Application Configuration:
    TA_APP_TIMEOUT                         Command timeout (default: 60s)
    TA_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  ta [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags override config before the database is opened.
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.initAPI()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the underlying repository.
func (r *RootCommand) Close() error {
	if r.closer != nil {
		return r.closer()
	}
	return nil
}

// initAPI opens the repository and builds the API facade. Called once per
// invocation after flag overrides are applied.
func (r *RootCommand) initAPI() error {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return err
	}
	r.api = api.New(repo)
	r.closer = repo.Close
	return nil
}

// app builds the handler dependency bundle.
func (r *RootCommand) app() *App {
	return NewApp(r.api, r.config)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TA_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TA_DB_FILENAME)")
	flags.String("time-format", "", "Time display format (overrides TA_TIME_DISPLAY_FORMAT)")
	flags.Int("pomodoro-minutes", 0, "Pomodoro length in minutes (overrides TA_POMODORO_MINUTES)")
	flags.String("server-host", "", "HTTP server host (overrides TA_SERVER_HOST)")
	flags.Int("server-port", 0, "HTTP server port (overrides TA_SERVER_PORT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TA_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TA_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task title]",
		Short: "Add a new task",
		Long: `Add a new pending task. Its predicted effort is estimated from the
session history of its category at creation time.

Examples:
  ta add "Write report"
  ta add "Write report" --category Writing --priority High
  ta add "Water plants" --recurrence Daily --due 2026-08-29`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewAddCommand(r.app())
			handler.Description, _ = cmd.Flags().GetString("description")
			handler.Category, _ = cmd.Flags().GetString("category")
			handler.Priority, _ = cmd.Flags().GetString("priority")
			handler.Recurrence, _ = cmd.Flags().GetString("recurrence")
			handler.Due, _ = cmd.Flags().GetString("due")
			return handler.Execute(ctx, args)
		},
	}
	addCmd.Flags().String("description", "", "Task description")
	addCmd.Flags().String("category", "", "Task category, used for effort prediction")
	addCmd.Flags().String("priority", "", "Task priority: High, Medium or Low (default Medium)")
	addCmd.Flags().String("recurrence", "", "Task recurrence: None, Daily or Weekly (default None)")
	addCmd.Flags().String("due", "", "Due date, e.g. 2026-09-01 or \"2026-09-01 17:00\"")

	listCmd := &cobra.Command{
		Use:   "list [pending|completed]",
		Short: "List tasks",
		Long: `List tasks by status. Pending tasks are shown in creation order;
completed tasks most recently completed first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListCommand(r.app()).Execute(ctx, args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete [task-id]",
		Short: "Complete a task",
		Long: `Mark a task as completed. With --minutes, the time worked is logged as
a work session. Completing a recurring task creates its next occurrence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewCompleteCommand(r.app())
			handler.Minutes, _ = cmd.Flags().GetFloat64("minutes")
			return handler.Execute(ctx, args)
		},
	}
	completeCmd.Flags().Float64("minutes", 0, "Minutes worked, logged alongside completion")

	logCmd := &cobra.Command{
		Use:   "log [task-id] [minutes]",
		Short: "Log work on a task",
		Long:  "Record minutes worked on a task without completing it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLogCommand(r.app()).Execute(ctx, args)
		},
	}

	predictCmd := &cobra.Command{
		Use:   "predict [category]",
		Short: "Predict effort for a category",
		Long: `Show the predicted effort in minutes for tasks of a category, based on
your logged work history. Without history the overall average is used;
without any sessions at all, a default estimate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewPredictCommand(r.app()).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
		Long: `Show today's productivity score, the weekly average, the daily score
history and total minutes per category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatsCommand(r.app()).Execute(ctx, args)
		},
	}

	hoursCmd := &cobra.Command{
		Use:   "hours",
		Short: "Show your most productive hours",
		Long:  "Rank hours of the day by total minutes worked in them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewHoursCommand(r.app())
			handler.TopN, _ = cmd.Flags().GetInt("top")
			return handler.Execute(ctx, args)
		},
	}
	hoursCmd.Flags().Int("top", 0, "Number of hours to show (default 3)")

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List all work sessions",
		Long:  "Print the full work session log, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewSessionsCommand(r.app()).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Long: `Delete a task. Its work sessions are kept so historical statistics
stay intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDeleteCommand(r.app()).Execute(ctx, args)
		},
	}

	pomodoroCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Focus timer commands",
		Long: `Run a focus timer against a task. Stopping the timer records the
elapsed time as a work session; cancelling discards it.`,
	}
	pomodoroCmd.AddCommand(
		&cobra.Command{
			Use:   "start [task-id]",
			Short: "Start a pomodoro for a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewPomodoroCommand(r.app()).Start(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the countdown for the active pomodoro",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewPomodoroCommand(r.app()).Status(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the pomodoro and log the elapsed time",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewPomodoroCommand(r.app()).Stop(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "cancel",
			Short: "Cancel the pomodoro without logging anything",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewPomodoroCommand(r.app()).Cancel(ctx, args)
			},
		},
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the task analytics API over HTTP until interrupted. Prometheus
metrics are exposed on /metrics unless disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The server runs until interrupted; no command timeout.
			return NewServeCommand(r.app()).Execute(context.Background(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		completeCmd,
		logCmd,
		predictCmd,
		statsCmd,
		hoursCmd,
		sessionsCmd,
		deleteCmd,
		pomodoroCmd,
		serveCmd,
	)
}

// commandContext returns a context bounded by the configured app timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Time.DisplayFormat = timeFormat
	}
	if pomodoroMinutes, _ := flags.GetInt("pomodoro-minutes"); pomodoroMinutes > 0 {
		r.config.Pomodoro.Minutes = pomodoroMinutes
	}
	if serverHost, _ := flags.GetString("server-host"); serverHost != "" {
		r.config.Server.Host = serverHost
	}
	if serverPort, _ := flags.GetInt("server-port"); serverPort > 0 {
		r.config.Server.Port = serverPort
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
