package cli

import (
	"context"
	"fmt"
	"sort"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command: today's score, the weekly average, the
// daily history and per-category breakdowns.
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	today, err := c.app.api.TodayScore(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}
	weekly, err := c.app.api.WeeklyAverageScore(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}

	fmt.Printf("Today's score:  %.1f\n", today)
	fmt.Printf("Weekly average: %.1f\n", weekly)

	scores, err := c.app.api.DailyScores(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}
	if len(scores) > 0 {
		fmt.Println("\nDaily history:")
		for _, score := range scores {
			fmt.Printf("  %s  %6.1f min  score %.1f\n",
				score.Date.Format("2006-01-02"), score.TotalMinutes, score.Score)
		}
	}

	totals, err := c.app.api.CategoryTotals(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}
	if len(totals) > 0 {
		categories := make([]string, 0, len(totals))
		for category := range totals {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Println("\nTime by category:")
		for _, category := range categories {
			name := category
			if name == "" {
				name = "(uncategorized)"
			}
			fmt.Printf("  %-20s %.1f min\n", name, totals[category])
		}
	}

	return nil
}
