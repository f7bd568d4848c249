package sqlite

// Label represents a stored shift label row.
type Label struct {
	ID        int64
	Name      string
	Color     string
	Duration  float64
	StartTime string // empty when unset
	EndTime   string // empty when unset
}

// Assignment represents one label placed on one calendar date. Row id order
// is insertion order within a date.
type Assignment struct {
	ID      int64
	Date    string // YYYY-MM-DD
	LabelID int64
}
