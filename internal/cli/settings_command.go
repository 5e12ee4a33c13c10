package cli

import (
	"context"
	"strconv"

	"ot-tracker/internal/services"
)

// SettingsSetOptions holds the settings set flags. A nil field keeps the
// current value.
type SettingsSetOptions struct {
	HourlyRate   *string
	OTMultiplier *string
}

// SettingsCommand handles the settings show and settings set commands
type SettingsCommand struct {
	app *App
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{app: app}
}

// Show prints the settings in effect
func (c *SettingsCommand) Show(ctx context.Context) error {
	settings, err := c.app.tracker.Settings(ctx)
	if err != nil {
		return err
	}
	c.app.printf("%s", c.app.formatter.Settings(settings))
	return nil
}

// Set saves new settings. Both values are validated together; a rejected
// value leaves the stored settings untouched.
func (c *SettingsCommand) Set(ctx context.Context, opts SettingsSetOptions) error {
	current, err := c.app.tracker.Settings(ctx)
	if err != nil {
		return err
	}

	in := services.SettingsInput{
		HourlyRate:   strconv.FormatFloat(current.HourlyRate, 'f', -1, 64),
		OTMultiplier: strconv.FormatFloat(current.OTMultiplier, 'f', -1, 64),
	}
	if opts.HourlyRate != nil {
		in.HourlyRate = *opts.HourlyRate
	}
	if opts.OTMultiplier != nil {
		in.OTMultiplier = *opts.OTMultiplier
	}

	settings, notices, err := c.app.tracker.SaveSettings(ctx, in)
	if err != nil {
		return err
	}
	c.app.printNotices(notices)
	c.app.printf("%s", c.app.formatter.Settings(settings))
	return nil
}
