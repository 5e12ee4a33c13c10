package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the overtime tracker
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"OT_DB_DIR"`
	Filename       string        `env:"OT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"OT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"OT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Currency  string `env:"OT_DISPLAY_CURRENCY"`
	HoursUnit string `env:"OT_DISPLAY_HOURS_UNIT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `env:"OT_VALIDATION_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"OT_APP_TIMEOUT"`
	Verbose bool          `env:"OT_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ExportDefaultFormat string `env:"OT_EXPORT_DEFAULT_FORMAT"`
}

// Export formats understood by the export command
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".ot"),
			Filename:       "ot.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			Currency:  "฿",
			HoursUnit: "hrs",
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 500,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
		Commands: CommandsConfig{
			ExportDefaultFormat: FormatCSV,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
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

// LoadFromEnvironment overrides fields whose OT_* variable is set. Unset
// variables leave the current value in place.
func (c *Config) LoadFromEnvironment() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Commands.ExportDefaultFormat {
	case FormatCSV, FormatJSON:
	default:
		return &ConfigError{Field: "commands.export_default_format", Message: "export format must be csv or json"}
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
