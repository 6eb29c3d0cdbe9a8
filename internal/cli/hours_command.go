package cli

import (
	"context"
	"fmt"
)

// HoursCommand handles the hours command
type HoursCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// TopN is the number of hour buckets to show; zero uses the default.
	TopN int
}

// NewHoursCommand creates a new hours command handler
func NewHoursCommand(app *App) *HoursCommand {
	return &HoursCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the hours command
func (c *HoursCommand) Execute(ctx context.Context, args []string) error {
	buckets, err := c.app.api.BestHours(ctx, c.TopN)
	if err != nil {
		return c.errorHandler.Handle("compute best hours", err)
	}

	if len(buckets) == 0 {
		fmt.Println("No work sessions recorded yet")
		return nil
	}

	fmt.Println("Most productive hours:")
	for i, bucket := range buckets {
		fmt.Printf("  %d. %s  %.1f min\n", i+1, bucket.Label, bucket.TotalMinutes)
	}
	return nil
}
