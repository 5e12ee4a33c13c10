package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentStore    = "store"
	ComponentService  = "service"
	ComponentDatabase = "database"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldKey       = "key"
	FieldIndex     = "index"
	FieldRecordID  = "record_id"
	FieldCount     = "count"
	FieldError     = "error"
)

// Logger wraps slog.Logger with a component name
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration
type Config struct {
	Level     slog.Leveler
	Component string
	Output    io.Writer
	Handler   slog.Handler
}

// processLevel is shared by every logger built from DefaultConfig
var processLevel = new(slog.LevelVar)

// DefaultConfig returns the CLI defaults: text output on stderr at info level
// so that stdout stays clean for tables and exports. OT_DEBUG starts at debug.
func DefaultConfig() Config {
	if DebugEnabled() {
		processLevel.Set(slog.LevelDebug)
	}
	return Config{
		Level:     processLevel,
		Component: ComponentApp,
		Output:    os.Stderr,
	}
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		out := config.Output
		if out == nil {
			out = os.Stderr
		}
		level := config.Level
		if level == nil {
			level = slog.LevelInfo
		}
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	component := config.Component
	if component == "" {
		component = ComponentApp
	}

	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		component: component,
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return New(Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

// With returns a new logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// WithComponent returns a new logger tagged with a different component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// Component returns the logger's component name
func (l *Logger) Component() string {
	return l.component
}

// Operation logs the outcome of a named operation at debug level. Failures
// carry the error field but stay at debug; the command boundary reports them.
func (l *Logger) Operation(ctx context.Context, op string, err error, args ...any) {
	args = append([]any{FieldOperation, op}, args...)
	if err != nil {
		l.DebugContext(ctx, "operation failed", append(args, FieldError, err.Error())...)
		return
	}
	l.DebugContext(ctx, "operation completed", args...)
}

// SetVerbose switches loggers built from DefaultConfig between info and
// debug. It is called once flags and environment have been read.
func SetVerbose(verbose bool) {
	if verbose || DebugEnabled() {
		processLevel.Set(slog.LevelDebug)
		return
	}
	processLevel.Set(slog.LevelInfo)
}

// SetDefault sets the default slog logger for the process
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
