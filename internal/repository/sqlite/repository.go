package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"workday/internal/errors"
	"workday/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for schedule persistence. All mutating
// operations are write-through: a successful return means the change is on disk.
type Repository interface {
	// Label operations
	CreateLabel(ctx context.Context, label *Label) error
	GetLabel(ctx context.Context, id int64) (*Label, error)
	ListLabels(ctx context.Context) ([]*Label, error)
	UpdateLabel(ctx context.Context, label *Label) error
	DeleteLabel(ctx context.Context, id int64) error
	DeleteAllLabels(ctx context.Context) error

	// Assignment operations
	AppendAssignment(ctx context.Context, date string, labelID int64) error
	RemoveAssignment(ctx context.Context, date string, labelID int64) (bool, error)
	ListAssignments(ctx context.Context, date string) ([]int64, error)
	AssignmentsInRange(ctx context.Context, fromDate, toDate string) (map[string][]int64, error)
	RemoveAssignmentsForLabel(ctx context.Context, labelID int64) error
	ClearAssignments(ctx context.Context) error

	// Settings operations
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance at the given path, creating
// the parent directory when needed and running pending migrations.
func New(dbPath string) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError(fmt.Sprintf("exec pragma %q", p), err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateLabel creates a new label and assigns its generated id.
func (r *SQLiteRepository) CreateLabel(ctx context.Context, label *Label) error {
	query := `
	INSERT INTO labels (name, color, duration, start_time, end_time)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		label.Name, label.Color, label.Duration, label.StartTime, label.EndTime)
	if err != nil {
		return err
	}

	label.ID = id
	return nil
}

// GetLabel retrieves a label by ID
func (r *SQLiteRepository) GetLabel(ctx context.Context, id int64) (*Label, error) {
	query := `
	SELECT id, name, color, duration, start_time, end_time
	FROM labels
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanLabel, "label", fmt.Sprintf("%d", id), id)
}

// ListLabels retrieves all labels in creation order.
func (r *SQLiteRepository) ListLabels(ctx context.Context) ([]*Label, error) {
	query := `
	SELECT id, name, color, duration, start_time, end_time
	FROM labels
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanLabels, "labels")
}

// UpdateLabel updates an existing label
func (r *SQLiteRepository) UpdateLabel(ctx context.Context, label *Label) error {
	query := `
	UPDATE labels
	SET name = ?, color = ?, duration = ?, start_time = ?, end_time = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "label", fmt.Sprintf("%d", label.ID),
		label.Name, label.Color, label.Duration, label.StartTime, label.EndTime, label.ID)
}

// DeleteLabel deletes a label by ID
func (r *SQLiteRepository) DeleteLabel(ctx context.Context, id int64) error {
	query := `DELETE FROM labels WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "label", fmt.Sprintf("%d", id), id)
}

// DeleteAllLabels removes every label.
func (r *SQLiteRepository) DeleteAllLabels(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM labels`); err != nil {
		return HandleDatabaseError("delete all labels", err)
	}
	return nil
}

// AppendAssignment appends a label to the end of a date's sequence.
// Duplicates of the same label on one date are allowed.
func (r *SQLiteRepository) AppendAssignment(ctx context.Context, date string, labelID int64) error {
	query := `INSERT INTO assignments (date, label_id) VALUES (?, ?)`
	if _, err := ExecuteWithLastInsertID(ctx, r.db, query, date, labelID); err != nil {
		return err
	}
	return nil
}

// RemoveAssignment removes the first occurrence of a label from a date's
// sequence. It reports whether a row was removed; removing a label that is
// not assigned is not an error.
func (r *SQLiteRepository) RemoveAssignment(ctx context.Context, date string, labelID int64) (bool, error) {
	query := `
	DELETE FROM assignments
	WHERE id = (
		SELECT id FROM assignments
		WHERE date = ? AND label_id = ?
		ORDER BY id ASC
		LIMIT 1
	)`

	result, err := r.db.ExecContext(ctx, query, date, labelID)
	if err != nil {
		return false, HandleDatabaseError("remove assignment", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, HandleDatabaseError("get rows affected", err)
	}
	return rows > 0, nil
}

// ListAssignments returns the ordered label ids assigned to a date. An
// unassigned date yields an empty slice.
func (r *SQLiteRepository) ListAssignments(ctx context.Context, date string) ([]int64, error) {
	query := `
	SELECT id, date, label_id
	FROM assignments
	WHERE date = ?
	ORDER BY id ASC`

	assignments, err := QueryMultiple(ctx, r.db, query, ScanAssignments, "assignments", date)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.LabelID)
	}
	return ids, nil
}

// AssignmentsInRange returns the assignment map restricted to date keys in
// [fromDate, toDate]. Date keys sort lexicographically, so a plain string
// comparison selects the calendar range.
func (r *SQLiteRepository) AssignmentsInRange(ctx context.Context, fromDate, toDate string) (map[string][]int64, error) {
	query := `
	SELECT id, date, label_id
	FROM assignments
	WHERE date >= ? AND date <= ?
	ORDER BY id ASC`

	assignments, err := QueryMultiple(ctx, r.db, query, ScanAssignments, "assignments", fromDate, toDate)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]int64)
	for _, a := range assignments {
		byDate[a.Date] = append(byDate[a.Date], a.LabelID)
	}
	return byDate, nil
}

// RemoveAssignmentsForLabel removes a label from every date's sequence.
func (r *SQLiteRepository) RemoveAssignmentsForLabel(ctx context.Context, labelID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE label_id = ?`, labelID); err != nil {
		return HandleDatabaseError("remove assignments for label", err)
	}
	return nil
}

// ClearAssignments empties the entire assignment map.
func (r *SQLiteRepository) ClearAssignments(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return HandleDatabaseError("clear assignments", err)
	}
	return nil
}

// GetSetting reads a setting value. The second return value is false when
// the key has never been written.
func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, HandleDatabaseError("get setting "+key, err)
	}
	return value, true, nil
}

// SetSetting writes a setting value, replacing any previous one.
func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO settings (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return HandleDatabaseError("set setting "+key, err)
	}
	return nil
}
