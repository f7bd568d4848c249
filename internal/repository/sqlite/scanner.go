package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanLabel scans a single label from a database row
func ScanLabel(scanner Scanner) (*Label, error) {
	label := &Label{}
	err := scanner.Scan(
		&label.ID,
		&label.Name,
		&label.Color,
		&label.Duration,
		&label.StartTime,
		&label.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return label, nil
}

// ScanLabels scans multiple labels from database rows
func ScanLabels(rows Rows) ([]*Label, error) {
	var labels []*Label
	for rows.Next() {
		label, err := ScanLabel(rows)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}

// ScanAssignment scans a single assignment from a database row
func ScanAssignment(scanner Scanner) (*Assignment, error) {
	assignment := &Assignment{}
	err := scanner.Scan(&assignment.ID, &assignment.Date, &assignment.LabelID)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// ScanAssignments scans multiple assignments from database rows
func ScanAssignments(rows Rows) ([]*Assignment, error) {
	var assignments []*Assignment
	for rows.Next() {
		assignment, err := ScanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
