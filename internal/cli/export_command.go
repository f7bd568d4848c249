package cli

import (
	"context"
	"os"

	"workday/internal/export"
	"workday/internal/services"
)

// ExportCommand handles the export command
type ExportCommand struct {
	reports      services.ReportService
	settings     services.SettingsService
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		reports:      app.services.Reports,
		settings:     app.services.Settings,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command, writing CSV to stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	year, month, err := parseMonthArg(args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	assignments, err := c.reports.MonthAssignments(ctx, year, month)
	if err != nil {
		return c.errorHandler.Handle("export month", err)
	}

	cfg, err := c.settings.Load(ctx)
	if err != nil {
		return c.errorHandler.Handle("export month", err)
	}

	writer := export.NewCSVWriter(cfg)
	if err := writer.Write(os.Stdout, assignments); err != nil {
		return c.errorHandler.Handle("export month", err)
	}
	return nil
}
