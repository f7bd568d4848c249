package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workday/internal/domain"
	"workday/internal/services"
)

func TestTextWriter(t *testing.T) {
	settings := &domain.Settings{
		CopyHeader: "Shifts for next month:",
		CopyFooter: "Thanks!",
	}
	assignments := []*services.DayAssignment{
		{
			Date:    "2024-03-04",
			Weekday: time.Monday,
			Label:   &domain.Label{ID: 1, Name: "16:00-22:00", Duration: 6},
		},
		{
			Date:    "2024-03-09",
			Weekday: time.Saturday,
			Label:   &domain.Label{ID: 2, Name: "Night", StartTime: "22:00", EndTime: "06:00", Duration: 8},
		},
	}

	text := NewTextWriter(settings).Render(assignments)
	assert.Equal(t,
		"Shifts for next month:\n"+
			"03/04 (Mon) 16:00-22:00\n"+
			"03/09 (Sat) 22:00 - 06:00\n"+
			"Thanks!",
		text)
}

func TestTextWriterWithoutHeaderFooter(t *testing.T) {
	assignments := []*services.DayAssignment{
		{
			Date:    "2024-03-04",
			Weekday: time.Monday,
			Label:   &domain.Label{ID: 1, Name: "Shift", Duration: 6},
		},
	}

	text := NewTextWriter(&domain.Settings{}).Render(assignments)
	assert.Equal(t, "03/04 (Mon) Shift", text)
}

func TestTextWriterEmptyMonth(t *testing.T) {
	text := NewTextWriter(&domain.Settings{}).Render(nil)
	assert.Equal(t, "", text)

	withHeader := NewTextWriter(&domain.Settings{CopyHeader: "Header"}).Render(nil)
	assert.Equal(t, "Header", withHeader)
}
