package domain

// Label represents a reusable shift template in the domain model.
// This is a pure domain model without database-specific concerns.
type Label struct {
	ID        int64
	Name      string
	Color     string
	Duration  float64 // hours, one-decimal precision
	StartTime string  // optional "HH:MM"
	EndTime   string  // optional "HH:MM"
}

// NewLabel creates a new Label with the given display fields.
func NewLabel(name, color string, duration float64) Label {
	return Label{
		Name:     name,
		Color:    color,
		Duration: duration,
	}
}

// HasClockTimes returns true when both explicit clock fields are populated.
func (l Label) HasClockTimes() bool {
	return l.StartTime != "" && l.EndTime != ""
}

// TimeRange returns the label's derivable time range, or nil when none exists.
// Explicit clock fields take precedence over pattern-matching the name.
func (l Label) TimeRange() *TimeRange {
	if l.HasClockTimes() {
		return RangeFromClocks(l.StartTime, l.EndTime)
	}
	return ParseTimeRange(l.Name)
}

// DisplayName returns the text shown for the label in exports: the clock
// range when both fields are set, otherwise the raw name.
func (l Label) DisplayName() string {
	if l.HasClockTimes() {
		return l.StartTime + " - " + l.EndTime
	}
	return l.Name
}

// IsValid checks if the label has valid data.
func (l Label) IsValid() bool {
	return l.Name != "" && l.Duration >= 0
}

// String returns the label name for display purposes.
func (l Label) String() string {
	return l.Name
}
