package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the workday application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Export      ExportConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WD_DB_DIR"`
	Filename       string        `env:"WD_DB_FILENAME"`
	Ephemeral      bool          `env:"WD_DB_EPHEMERAL"`
	QueryTimeout   time.Duration `env:"WD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WD_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	LabelNameMinLength int `env:"WD_VALIDATION_LABEL_NAME_MIN"`
	LabelNameMaxLength int `env:"WD_VALIDATION_LABEL_NAME_MAX"`
}

// ExportConfig holds export defaults
type ExportConfig struct {
	CSVFilename string `env:"WD_EXPORT_CSV_FILENAME"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WD_APP_TIMEOUT"`
	Verbose bool          `env:"WD_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".workday")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "workday.db",
			Ephemeral:      false,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			LabelNameMinLength: 1,
			LabelNameMaxLength: 100,
		},
		Export: ExportConfig{
			CSVFilename: "shifts.csv",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file. An ephemeral
// configuration gets an in-memory database that lasts one process.
func (c *Config) GetDatabasePath() string {
	if c.Database.Ephemeral {
		return ":memory:"
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if ephemeral := os.Getenv("WD_DB_EPHEMERAL"); ephemeral != "" {
		c.Database.Ephemeral = ParseBoolWithFallback(ephemeral, c.Database.Ephemeral)
	}
	if timeout := os.Getenv("WD_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("WD_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("WD_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("WD_VALIDATION_LABEL_NAME_MIN"); minLen != "" {
		c.Validation.LabelNameMinLength = ParseIntWithFallback(minLen, c.Validation.LabelNameMinLength)
	}
	if maxLen := os.Getenv("WD_VALIDATION_LABEL_NAME_MAX"); maxLen != "" {
		c.Validation.LabelNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.LabelNameMaxLength)
	}

	// Export configuration
	if filename := os.Getenv("WD_EXPORT_CSV_FILENAME"); filename != "" {
		c.Export.CSVFilename = filename
	}

	// Application configuration
	if timeout := os.Getenv("WD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WD_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if !c.Database.Ephemeral {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.LabelNameMinLength < 1 {
		return &ConfigError{Field: "validation.label_name_min_length", Message: "label name minimum length must be at least 1"}
	}
	if c.Validation.LabelNameMaxLength < c.Validation.LabelNameMinLength {
		return &ConfigError{Field: "validation.label_name_max_length", Message: "label name maximum length must be greater than minimum length"}
	}

	if c.Export.CSVFilename == "" {
		return &ConfigError{Field: "export.csv_filename", Message: "export filename cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
