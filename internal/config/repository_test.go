package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	// The in-memory database comes up fully migrated.
	ids, err := repo.ListAssignments(context.Background(), "2024-03-04")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCreateRepositoryEphemeral(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Ephemeral = true

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, ok, err := repo.GetSetting(context.Background(), "hourly_rate")
	require.NoError(t, err)
	assert.False(t, ok)
}
