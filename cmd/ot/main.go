package main

import (
	"fmt"
	"os"

	"ot-tracker/internal/cli"
	"ot-tracker/internal/config"
	apperrors "ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := logging.New(logging.DefaultConfig())
	logging.SetDefault(logger)
	errorHandler := cli.NewErrorHandler()

	// Defaults, then .env, then the environment; flags are applied by the
	// root command once they are parsed.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	factory := NewTrackerFactory(getEnvironment(), logger)
	root := cli.NewRootCommand(cfg, factory.Open, logger, os.Stdout)
	defer func() {
		if err := root.Close(); err != nil {
			logger.Warn("failed to close database", logging.FieldError, err.Error())
		}
	}()

	if err := root.Execute(args); err != nil {
		// Usage and flag errors from cobra are plain errors; only structured
		// failures are worth a log line.
		if apperrors.IsAppError(err) && errorHandler.ShouldLog(err) {
			logger.Error("command failed", logging.FieldOperation, root.Operation(),
				logging.FieldError, err.Error(), "code", errorHandler.GetErrorCode(err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", errorHandler.Report(root.Operation(), err))
		if hint := errorHandler.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		return 1
	}
	return 0
}
