package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"ot-tracker/internal/services"
)

// AddOptions are the add command flags
type AddOptions struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
}

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute records an overtime session. The date defaults to today. When a
// time is missing and stdin is a terminal, a form asks for the rest.
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	if strings.TrimSpace(opts.Date) == "" {
		opts.Date = c.app.tracker.Today().String()
	}

	if (opts.StartTime == "" || opts.EndTime == "") && c.app.interactive() {
		values := RecordFormValues(opts)
		if err := c.app.prompter.RecordForm(&values); err != nil {
			if stderrors.Is(err, errCancelled) {
				c.app.println("Cancelled.")
				return nil
			}
			return err
		}
		opts = AddOptions(values)
	}

	record, notices, err := c.app.tracker.AddRecord(ctx, services.RecordInput{
		Date:        opts.Date,
		StartTime:   opts.StartTime,
		EndTime:     opts.EndTime,
		Description: opts.Description,
	})
	if err != nil {
		return err
	}

	c.app.printNotices(notices)
	c.app.println(c.app.formatter.Record(record))
	return nil
}
