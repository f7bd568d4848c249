package cli

import (
	"context"
	"fmt"

	"workday/internal/export"
	"workday/internal/services"
)

// CopyCommand handles the copy command
type CopyCommand struct {
	reports      services.ReportService
	settings     services.SettingsService
	errorHandler *ErrorHandler
}

// NewCopyCommand creates a new copy command handler
func NewCopyCommand(app *App) *CopyCommand {
	return &CopyCommand{
		reports:      app.services.Reports,
		settings:     app.services.Settings,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the copy command, printing the paste-ready shift listing.
func (c *CopyCommand) Execute(ctx context.Context, args []string) error {
	year, month, err := parseMonthArg(args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	assignments, err := c.reports.MonthAssignments(ctx, year, month)
	if err != nil {
		return c.errorHandler.Handle("copy month", err)
	}

	cfg, err := c.settings.Load(ctx)
	if err != nil {
		return c.errorHandler.Handle("copy month", err)
	}

	text := export.NewTextWriter(cfg).Render(assignments)
	if text != "" {
		fmt.Println(text)
	}
	return nil
}
