package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "workday.db", cfg.Database.Filename)
	assert.False(t, cfg.Database.Ephemeral)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 1, cfg.Validation.LabelNameMinLength)
	assert.Equal(t, 100, cfg.Validation.LabelNameMaxLength)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WD_DB_DIR", "/tmp/wd-test")
	t.Setenv("WD_DB_FILENAME", "test.db")
	t.Setenv("WD_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("WD_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wd-test", cfg.Database.Dir)
	assert.Equal(t, "test.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, filepath.Join("/tmp/wd-test", "test.db"), cfg.GetDatabasePath())
}

func TestMalformedEnvironmentKeepsDefaults(t *testing.T) {
	t.Setenv("WD_DB_QUERY_TIMEOUT", "soon")
	t.Setenv("WD_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestEphemeralDatabasePath(t *testing.T) {
	t.Setenv("WD_DB_EPHEMERAL", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.True(t, cfg.Database.Ephemeral)
	assert.Equal(t, ":memory:", cfg.GetDatabasePath())
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "empty database dir",
			mutate: func(c *Config) { c.Database.Dir = "" },
			field:  "database.dir",
		},
		{
			name:   "empty filename",
			mutate: func(c *Config) { c.Database.Filename = "" },
			field:  "database.filename",
		},
		{
			name:   "zero query timeout",
			mutate: func(c *Config) { c.Database.QueryTimeout = 0 },
			field:  "database.query_timeout",
		},
		{
			name:   "max below min name length",
			mutate: func(c *Config) { c.Validation.LabelNameMaxLength = 0 },
			field:  "validation.label_name_max_length",
		},
		{
			name:   "zero app timeout",
			mutate: func(c *Config) { c.Application.Timeout = 0 },
			field:  "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
