package cli

import (
	"context"
	"fmt"
	"strings"
)

// PredictCommand handles the predict command
type PredictCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPredictCommand creates a new predict command handler
func NewPredictCommand(app *App) *PredictCommand {
	return &PredictCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the predict command. With no argument it predicts for the
// uncategorized group.
func (c *PredictCommand) Execute(ctx context.Context, args []string) error {
	category := strings.Join(args, " ")

	predicted, err := c.app.api.Predict(ctx, category)
	if err != nil {
		return c.errorHandler.Handle("predict effort", err)
	}

	if category == "" {
		fmt.Printf("Predicted effort: %.1f minutes\n", predicted)
	} else {
		fmt.Printf("Predicted effort for %q: %.1f minutes\n", category, predicted)
	}
	return nil
}
