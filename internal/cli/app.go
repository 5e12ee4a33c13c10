package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"ot-tracker/internal/config"
	"ot-tracker/internal/domain"
	"ot-tracker/internal/logging"
	"ot-tracker/internal/services"
)

// Tracker is the application surface the commands drive
type Tracker interface {
	ListRecords(ctx context.Context) ([]domain.OTRecord, error)
	AddRecord(ctx context.Context, in services.RecordInput) (domain.OTRecord, []services.Notice, error)
	DeleteRecord(ctx context.Context, index int) (domain.OTRecord, []services.Notice, error)
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, in services.SettingsInput) (domain.Settings, []services.Notice, error)
	Summary(ctx context.Context, day *domain.Date) (domain.Summary, error)
	SummaryWindow(ctx context.Context, window domain.Window, day *domain.Date) (domain.Totals, error)
	Today() domain.Date
}

// App holds what every command handler needs
type App struct {
	tracker     Tracker
	config      *config.Config
	out         io.Writer
	formatter   *Formatter
	prompter    Prompter
	interactive func() bool
	logger      *logging.Logger
}

// NewApp creates a CLI application writing to stdout and prompting on the
// terminal when stdin is one.
func NewApp(tracker Tracker, cfg *config.Config, logger *logging.Logger) *App {
	return NewAppWithOutput(tracker, cfg, logger, os.Stdout)
}

// NewAppWithOutput creates a CLI application writing to out
func NewAppWithOutput(tracker Tracker, cfg *config.Config, logger *logging.Logger, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		tracker:     tracker,
		config:      cfg,
		out:         out,
		formatter:   NewFormatter(out, cfg),
		prompter:    huhPrompter{},
		interactive: stdinIsTerminal,
		logger:      logger.WithComponent(logging.ComponentCLI),
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printNotices(notices []services.Notice) {
	for _, n := range notices {
		a.println(a.formatter.Notice(n))
	}
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// isTerminal reports whether w is a terminal. Buffers and pipes are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
