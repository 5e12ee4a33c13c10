package cli

import (
	"context"
	"strconv"
	"strings"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
)

// SummaryOptions are the summary command flags
type SummaryOptions struct {
	// Date selects the day for the daily window; empty means today
	Date string
	// Window limits output to one of day, month or year
	Window string
}

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute prints daily, monthly and yearly totals
func (c *SummaryCommand) Execute(ctx context.Context, opts SummaryOptions) error {
	today := c.app.tracker.Today()

	var day *domain.Date
	if strings.TrimSpace(opts.Date) != "" {
		d, err := domain.ParseDate(opts.Date)
		if err != nil {
			return errors.NewInvalidInputError("date", opts.Date, "use YYYY-MM-DD")
		}
		day = &d
	}

	if strings.TrimSpace(opts.Window) == "" {
		summary, err := c.app.tracker.Summary(ctx, day)
		if err != nil {
			return err
		}
		c.app.printf("%s", c.app.formatter.Summary(summary, today))
		return nil
	}

	window, err := domain.ParseWindow(opts.Window)
	if err != nil {
		return errors.NewInvalidInputError("window", opts.Window, "use day, month or year")
	}
	totals, err := c.app.tracker.SummaryWindow(ctx, window, day)
	if err != nil {
		return err
	}

	period := strconv.Itoa(today.Year)
	switch window {
	case domain.WindowDay:
		period = today.String()
		if day != nil {
			period = day.String()
		}
	case domain.WindowMonth:
		period = MonthPeriod(today)
	}
	c.app.printf("%s", c.app.formatter.Totals(window, period, totals))
	return nil
}
