package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestCreateAndGetLabel(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	label := &Label{Name: "16:00-22:00", Color: "#3b82f6", Duration: 6}
	err := repo.CreateLabel(ctx, label)
	require.NoError(t, err)
	assert.Greater(t, label.ID, int64(0))

	retrieved, err := repo.GetLabel(ctx, label.ID)
	require.NoError(t, err)
	assert.Equal(t, label.Name, retrieved.Name)
	assert.Equal(t, label.Color, retrieved.Color)
	assert.Equal(t, label.Duration, retrieved.Duration)
	assert.Equal(t, "", retrieved.StartTime)
	assert.Equal(t, "", retrieved.EndTime)
}

func TestGetLabelNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetLabel(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListLabelsCreationOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	names := []string{"Morning", "Evening", "Night"}
	for _, name := range names {
		require.NoError(t, repo.CreateLabel(ctx, &Label{Name: name}))
	}

	labels, err := repo.ListLabels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	for i, label := range labels {
		assert.Equal(t, names[i], label.Name)
	}
}

func TestUpdateLabel(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	label := &Label{Name: "Old", Duration: 4}
	require.NoError(t, repo.CreateLabel(ctx, label))

	label.Name = "New"
	label.Duration = 6
	label.StartTime = "16:00"
	label.EndTime = "22:00"
	require.NoError(t, repo.UpdateLabel(ctx, label))

	retrieved, err := repo.GetLabel(ctx, label.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", retrieved.Name)
	assert.Equal(t, 6.0, retrieved.Duration)
	assert.Equal(t, "16:00", retrieved.StartTime)
	assert.Equal(t, "22:00", retrieved.EndTime)
}

func TestDeleteLabel(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	label := &Label{Name: "Shift"}
	require.NoError(t, repo.CreateLabel(ctx, label))
	require.NoError(t, repo.DeleteLabel(ctx, label.ID))

	_, err := repo.GetLabel(ctx, label.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestAssignmentsInsertionOrderAndDuplicates(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// The same label may appear multiple times on one date.
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 2))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 2))

	ids, err := repo.ListAssignments(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 2}, ids)
}

func TestListAssignmentsEmptyDate(t *testing.T) {
	repo := setupTestDB(t)

	ids, err := repo.ListAssignments(context.Background(), "2024-03-04")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRemoveAssignmentFirstOccurrence(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 2))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 1))

	removed, err := repo.RemoveAssignment(ctx, "2024-03-04", 1)
	require.NoError(t, err)
	assert.True(t, removed)

	ids, err := repo.ListAssignments(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids)
}

func TestRemoveAssignmentAbsentIsNotAnError(t *testing.T) {
	repo := setupTestDB(t)

	removed, err := repo.RemoveAssignment(context.Background(), "2024-03-04", 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAssignmentsInRange(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAssignment(ctx, "2024-02-29", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-01", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-15", 2))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-31", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-04-01", 2))

	byDate, err := repo.AssignmentsInRange(ctx, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, byDate, 3)
	assert.Equal(t, []int64{1}, byDate["2024-03-01"])
	assert.Equal(t, []int64{2}, byDate["2024-03-15"])
	assert.Equal(t, []int64{1}, byDate["2024-03-31"])
}

func TestRemoveAssignmentsForLabel(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 2))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-05", 1))

	require.NoError(t, repo.RemoveAssignmentsForLabel(ctx, 1))

	ids, err := repo.ListAssignments(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	ids, err = repo.ListAssignments(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestClearAssignments(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-04", 1))
	require.NoError(t, repo.AppendAssignment(ctx, "2024-03-05", 2))

	require.NoError(t, repo.ClearAssignments(ctx))

	byDate, err := repo.AssignmentsInRange(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, byDate)
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	_, ok, err := repo.GetSetting(ctx, "hourly_rate")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetSetting(ctx, "hourly_rate", "1200"))

	value, ok, err := repo.GetSetting(ctx, "hourly_rate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1200", value)

	// Upsert replaces the previous value.
	require.NoError(t, repo.SetSetting(ctx, "hourly_rate", "1500"))
	value, ok, err = repo.GetSetting(ctx, "hourly_rate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1500", value)
}
