package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"ot-tracker/internal/config"
	"ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
)

// OpenFunc opens the tracker for a fully resolved configuration. The
// returned closer releases the backing store.
type OpenFunc func(cfg *config.Config) (Tracker, io.Closer, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	open   OpenFunc
	logger *logging.Logger
	out    io.Writer

	app      *App
	closer   io.Closer
	executed *cobra.Command

	// newApp builds the App once the tracker is open; tests swap it to
	// inject prompts and terminal detection.
	newApp func(tracker Tracker) *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, open OpenFunc, logger *logging.Logger, out io.Writer) *RootCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	root := &RootCommand{
		config: cfg,
		open:   open,
		logger: logger,
		out:    out,
	}
	root.newApp = func(tracker Tracker) *App {
		return NewAppWithOutput(tracker, root.config, root.logger, root.out)
	}

	root.cmd = &cobra.Command{
		Use:   "ot",
		Short: "Track overtime hours and earnings",
		Long: `ot records overtime sessions, works out hours and pay from your hourly
rate and OT multiplier, and totals them by day, month and year.

EXAMPLES:
  ot settings set --rate 100 --multiplier 1.5   # Configure pay first
  ot add --start 22:00 --end 06:00 -d "cutover" # Overnight session, today
  ot add --date 2026-10-18 --start 18:00 --end 20:30
  ot list                                       # Newest first, numbered
  ot delete 2                                   # Delete the second row of ot list
  ot summary                                    # Daily, monthly and yearly totals
  ot export --format csv > ot.csv

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    OT_DB_DIR                   Database directory (default: ~/.ot)
    OT_DB_FILENAME              Database filename (default: ot.db)
    OT_DB_QUERY_TIMEOUT         Query timeout (default: 10s)
    OT_DB_WRITE_TIMEOUT         Write timeout (default: 5s)
    OT_DISPLAY_CURRENCY         Currency symbol (default: ฿)
    OT_DISPLAY_HOURS_UNIT       Hours unit label (default: hrs)
    OT_VALIDATION_DESCRIPTION_MAX  Max description length (default: 500)
    OT_APP_TIMEOUT              Application timeout (default: 60s)
    OT_APP_VERBOSE              Enable debug logging (default: false)
    OT_EXPORT_DEFAULT_FORMAT    Default export format (default: csv)
    OT_ENV                      development, testing or production (default)
    OT_DEBUG                    Debug logging from startup`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(cmd); err != nil {
				return err
			}
			return root.openApp()
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// annotationOperation names, as a verb phrase, what a subcommand does. It
// prefixes error messages: "failed to <operation>: ...".
const annotationOperation = "operation"

// Execute runs the root command with the given arguments
func (r *RootCommand) Execute(args []string) error {
	r.cmd.SetArgs(args)
	executed, err := r.cmd.ExecuteC()
	r.executed = executed
	return err
}

// Operation returns the operation of the last executed subcommand, or "" for
// the root command and for argument errors raised before one was found.
func (r *RootCommand) Operation() string {
	if r.executed == nil {
		return ""
	}
	return r.executed.Annotations[annotationOperation]
}

// Close releases the store opened for the command, if any
func (r *RootCommand) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides OT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides OT_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides OT_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides OT_DB_WRITE_TIMEOUT)")

	flags.String("currency", "", "Currency symbol (overrides OT_DISPLAY_CURRENCY)")
	flags.String("hours-unit", "", "Hours unit label (overrides OT_DISPLAY_HOURS_UNIT)")

	flags.Int("description-max", 0, "Maximum description length (overrides OT_VALIDATION_DESCRIPTION_MAX)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides OT_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides OT_APP_VERBOSE)")
}

func (r *RootCommand) addSubcommands() {
	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an overtime session",
		Long: `Record an overtime session. Duration and earnings are computed from the
current settings; an end time earlier than the start time crosses midnight.

An hourly rate must be set first (ot settings set --rate).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive forms may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout()*2)
			defer cancel()
			return NewAddCommand(r.app).Execute(ctx, addOpts)
		},
	}
	addCmd.Flags().StringVar(&addOpts.Date, "date", "", "Date of the session, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&addOpts.StartTime, "start", "s", "", "Start time, HH:MM")
	addCmd.Flags().StringVarP(&addOpts.EndTime, "end", "e", "", "End time, HH:MM")
	addCmd.Flags().StringVarP(&addOpts.Description, "description", "d", "", "What the overtime was for")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List overtime records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return NewListCommand(r.app).Execute(ctx)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [number]",
		Short: "Delete an overtime record",
		Long: `Delete the record at the given position in ot list (1 is the newest).
Without a number, pick the record from a menu.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Delete commands may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout()*2)
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	var summaryOpts SummaryOptions
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show daily, monthly and yearly totals",
		Long: `Show total hours and earnings for today, this month and this year. A record
counts towards every window it falls in.

Examples:
  ot summary                      # Today, this month, this year
  ot summary --date 2026-10-01    # Daily window for another day
  ot summary --window month       # Only this month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return NewSummaryCommand(r.app).Execute(ctx, summaryOpts)
		},
	}
	summaryCmd.Flags().StringVar(&summaryOpts.Date, "date", "", "Day for the daily total, YYYY-MM-DD (default today)")
	summaryCmd.Flags().StringVarP(&summaryOpts.Window, "window", "w", "", "Only show one window: day, month or year")

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change hourly rate and OT multiplier",
	}
	settingsShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return NewSettingsCommand(r.app).Show(ctx)
		},
	}
	var rate, multiplier string
	settingsSetCmd := &cobra.Command{
		Use:   "set",
		Short: "Change the hourly rate and OT multiplier",
		Long: `Change the hourly rate (a number, not negative) and the OT multiplier (at
least 1). Existing records keep the earnings computed when they were added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			var opts SettingsSetOptions
			if cmd.Flags().Changed("rate") {
				opts.HourlyRate = &rate
			}
			if cmd.Flags().Changed("multiplier") {
				opts.OTMultiplier = &multiplier
			}
			if opts.HourlyRate == nil && opts.OTMultiplier == nil {
				return errors.NewInvalidInputError("settings", "", "nothing to change, pass --rate and/or --multiplier")
			}
			return NewSettingsCommand(r.app).Set(ctx, opts)
		},
	}
	settingsSetCmd.Flags().StringVarP(&rate, "rate", "r", "", "Hourly rate")
	settingsSetCmd.Flags().StringVarP(&multiplier, "multiplier", "m", "", "OT multiplier")
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as CSV or JSON",
		Long: `Write all records to stdout.

Supported formats:
  csv  - Comma-separated values with a header row
  json - The stored record layout

Example:
  ot export --format json > ot.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return NewExportCommand(r.app).Execute(ctx, format)
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "csv or json (overrides OT_EXPORT_DEFAULT_FORMAT)")

	setOperation(addCmd, "add OT record")
	setOperation(listCmd, "list OT records")
	setOperation(deleteCmd, "delete OT record")
	setOperation(summaryCmd, "summarize overtime")
	setOperation(settingsShowCmd, "show settings")
	setOperation(settingsSetCmd, "save settings")
	setOperation(exportCmd, "export OT records")

	r.cmd.AddCommand(addCmd, listCmd, deleteCmd, summaryCmd, settingsCmd, exportCmd)
}

func setOperation(cmd *cobra.Command, operation string) {
	cmd.Annotations = map[string]string{annotationOperation: operation}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// applyFlags copies explicitly set global flags onto the configuration
func (r *RootCommand) applyFlags(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	var overrides config.ConfigOverrides

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("currency") {
		v, _ := flags.GetString("currency")
		overrides.Currency = &v
	}
	if flags.Changed("hours-unit") {
		v, _ := flags.GetString("hours-unit")
		overrides.HoursUnit = &v
	}
	if flags.Changed("description-max") {
		v, _ := flags.GetInt("description-max")
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	r.config.ApplyOverrides(&overrides)
	if err := r.config.Validate(); err != nil {
		return err
	}
	logging.SetVerbose(r.config.Application.Verbose)
	return nil
}

// openApp opens the store for this invocation and builds the App
func (r *RootCommand) openApp() error {
	tracker, closer, err := r.open(r.config)
	if err != nil {
		return err
	}
	r.closer = closer
	r.app = r.newApp(tracker)
	return nil
}
