package main

import (
	"fmt"
	"io"
	"os"

	"ot-tracker/internal/cli"
	"ot-tracker/internal/config"
	"ot-tracker/internal/logging"
	"ot-tracker/internal/repository/sqlite"
	"ot-tracker/internal/services"
	"ot-tracker/internal/store"
	"ot-tracker/internal/validation"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// developmentDBPath keeps development data next to the working copy
const developmentDBPath = "ot.db"

// TrackerFactory opens the store for an environment and builds the tracker
// service on top of it
type TrackerFactory struct {
	env    Environment
	logger *logging.Logger
}

// NewTrackerFactory creates a new tracker factory for the given environment
func NewTrackerFactory(env Environment, logger *logging.Logger) *TrackerFactory {
	return &TrackerFactory{env: env, logger: logger}
}

// Open satisfies cli.OpenFunc
func (f *TrackerFactory) Open(cfg *config.Config) (cli.Tracker, io.Closer, error) {
	repo, err := f.createRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	v := validation.NewValidatorWithConfig(cfg)
	storeLogger := f.logger.WithComponent(logging.ComponentStore)
	tracker := services.NewTrackerService(
		store.NewRecordStore(repo, storeLogger),
		store.NewSettingsStore(repo, storeLogger),
		services.WithValidator(v),
		services.WithLogger(f.logger),
	)
	return tracker, repo, nil
}

func (f *TrackerFactory) createRepository(cfg *config.Config) (*sqlite.Repository, error) {
	switch f.env {
	case Development:
		// For development, use a local database file
		repo, err := sqlite.NewWithOptions(developmentDBPath, sqlite.Options{
			QueryTimeout: cfg.GetQueryTimeout(),
			WriteTimeout: cfg.GetWriteTimeout(),
			Logger:       f.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development database: %w", err)
		}
		return repo, nil
	case Testing:
		return config.CreateTestRepository()
	default:
		return config.CreateRepository(cfg, f.logger)
	}
}

// getEnvironment determines the current environment from OT_ENV
func getEnvironment() Environment {
	switch Environment(os.Getenv("OT_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
