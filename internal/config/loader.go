package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	envFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: ".env",
	}
}

// WithEnvFile sets the dotenv file read before the environment. An empty
// path disables dotenv loading.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Merge a .env file into the process environment, if present
// 3. Override with environment variables
// 4. Command line flags are applied later with Config.ApplyOverrides
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		// godotenv never overwrites variables that are already set, and a
		// missing file is not an error.
		_ = godotenv.Load(l.envFile)
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	Currency  *string
	HoursUnit *string

	DescriptionMaxLength *int

	Timeout *time.Duration
	Verbose *bool

	ExportDefaultFormat *string
}

// ApplyOverrides copies every non-nil override onto the configuration
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		c.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		c.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		c.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		c.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	if overrides.Currency != nil {
		c.Display.Currency = *overrides.Currency
	}
	if overrides.HoursUnit != nil {
		c.Display.HoursUnit = *overrides.HoursUnit
	}

	if overrides.DescriptionMaxLength != nil {
		c.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}

	if overrides.ExportDefaultFormat != nil {
		c.Commands.ExportDefaultFormat = *overrides.ExportDefaultFormat
	}
}
