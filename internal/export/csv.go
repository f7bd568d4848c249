package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"workday/internal/domain"
	"workday/internal/services"
)

// utf8BOM makes spreadsheet applications detect the encoding correctly.
const utf8BOM = "\uFEFF"

var csvHeader = []string{"Date", "Day", "Shift", "Hours", "Cost"}

// CSVWriter renders month assignments as a spreadsheet-compatible CSV file.
type CSVWriter struct {
	settings *domain.Settings
}

// NewCSVWriter creates a CSV writer using the given settings for costing.
func NewCSVWriter(settings *domain.Settings) *CSVWriter {
	return &CSVWriter{settings: settings}
}

// Write renders one row per assignment, preceded by a BOM and a header row.
func (c *CSVWriter) Write(w io.Writer, assignments []*services.DayAssignment) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}

	for _, assignment := range assignments {
		cost := math.Round(assignment.Label.Duration * c.settings.HourlyRate)
		record := []string{
			assignment.Date,
			assignment.Weekday.String()[:3],
			assignment.Label.DisplayName(),
			formatHours(assignment.Label.Duration),
			fmt.Sprintf("%.0f", cost),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}
	return nil
}

// formatHours prints a duration without a trailing ".0" for whole hours.
func formatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0f", hours)
	}
	return fmt.Sprintf("%.1f", hours)
}
