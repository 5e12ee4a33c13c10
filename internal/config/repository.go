package config

import (
	"fmt"
	"os"

	"ot-tracker/internal/logging"
	"ot-tracker/internal/repository/sqlite"
)

// CreateRepository opens the SQLite key-value store at the configured path
func CreateRepository(config *Config, logger *logging.Logger) (*sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout:   config.GetQueryTimeout(),
		WriteTimeout:   config.GetWriteTimeout(),
		DirPermissions: os.FileMode(config.Database.DirPermissions),
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory SQLite store
func CreateTestRepository() (*sqlite.Repository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
