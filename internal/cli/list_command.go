package cli

import (
	"context"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every record, newest first
func (c *ListCommand) Execute(ctx context.Context) error {
	records, err := c.app.tracker.ListRecords(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		c.app.println("No OT records yet.")
		return nil
	}
	c.app.printf("%s", c.app.formatter.Records(records))
	return nil
}
