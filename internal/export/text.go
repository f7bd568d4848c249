package export

import (
	"fmt"
	"strings"

	"workday/internal/domain"
	"workday/internal/services"
)

// TextWriter renders month assignments as a plain-text shift listing, with
// an optional configured header and footer, suitable for pasting into chat.
type TextWriter struct {
	settings *domain.Settings
}

// NewTextWriter creates a text writer using the configured header and footer.
func NewTextWriter(settings *domain.Settings) *TextWriter {
	return &TextWriter{settings: settings}
}

// Render returns one "MM/DD (Www) shift" line per assignment. Header and
// footer are included only when set.
func (t *TextWriter) Render(assignments []*services.DayAssignment) string {
	var lines []string

	if t.settings.CopyHeader != "" {
		lines = append(lines, t.settings.CopyHeader)
	}

	for _, assignment := range assignments {
		lines = append(lines, formatShiftLine(assignment))
	}

	if t.settings.CopyFooter != "" {
		lines = append(lines, t.settings.CopyFooter)
	}

	return strings.Join(lines, "\n")
}

// formatShiftLine renders a single "MM/DD (Www) shift" line.
func formatShiftLine(assignment *services.DayAssignment) string {
	// Date keys are validated YYYY-MM-DD, so positional slicing is safe.
	month := assignment.Date[5:7]
	day := assignment.Date[8:10]
	weekday := assignment.Weekday.String()[:3]
	return fmt.Sprintf("%s/%s (%s) %s", month, day, weekday, assignment.Label.DisplayName())
}
