package cli

import (
	"context"
	"fmt"
	"math"
	"time"

	"workday/internal/errors"
	"workday/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// SummaryCommand handles the summary command
type SummaryCommand struct {
	reports      services.ReportService
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		reports:      app.services.Reports,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command for a month, defaulting to the current one.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	year, month, err := parseMonthArg(args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	summary, err := c.reports.MonthSummary(ctx, year, month)
	if err != nil {
		return c.errorHandler.Handle("summarize month", err)
	}

	fmt.Printf("Summary for %04d-%02d\n", summary.Year, summary.Month)
	fmt.Printf("  Total hours: %s\n", formatHours(summary.TotalHours))
	fmt.Printf("  Worked days: %d\n", summary.WorkedDays)
	if summary.SalaryVisible {
		fmt.Printf("  Estimated salary: %.0f\n", summary.Salary)
	}

	fmt.Println("  Weeks:")
	for _, week := range summary.Weeks {
		marker := ""
		if week.OverLimit {
			marker = "  (over limit)"
		}
		fmt.Printf("    %s  %sh%s\n", week.StartDate, formatHours(week.Hours), marker)
	}
	return nil
}

// parseMonthArg parses an optional YYYY-MM positional argument, defaulting to
// the current month.
func parseMonthArg(args []string) (int, time.Month, error) {
	if len(args) == 0 {
		now := timeNow()
		return now.Year(), now.Month(), nil
	}

	parsed, err := time.Parse("2006-01", args[0])
	if err != nil {
		return 0, 0, errors.NewInvalidInputError("month", args[0], "must be YYYY-MM")
	}
	return parsed.Year(), parsed.Month(), nil
}

// formatHours prints a duration without a trailing ".0" for whole hours.
func formatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0f", hours)
	}
	return fmt.Sprintf("%.1f", hours)
}
