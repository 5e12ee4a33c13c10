package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"ot-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the record at the 1-based position shown by list. Without
// an argument on a terminal, the user picks the record from a menu.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		position, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return errors.NewInvalidInputError("index", args[0], "must be a record number from `ot list`")
		}
		return c.deleteAt(ctx, position-1)
	}

	if !c.app.interactive() {
		return errors.NewInvalidInputError("index", "", "give the record number from `ot list`")
	}
	return c.deleteInteractive(ctx)
}

func (c *DeleteCommand) deleteInteractive(ctx context.Context) error {
	records, err := c.app.tracker.ListRecords(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		c.app.println("No OT records to delete.")
		return nil
	}

	options := make([]string, 0, len(records))
	for i, r := range records {
		options = append(options, fmt.Sprintf("%d. %s", i+1, c.app.formatter.Record(r)))
	}

	index, err := c.app.prompter.SelectRecord("Select a record to delete", options)
	if err == nil {
		var ok bool
		ok, err = c.app.prompter.Confirm(fmt.Sprintf("Delete record %d?", index+1))
		if err == nil && !ok {
			err = errCancelled
		}
	}
	if stderrors.Is(err, errCancelled) {
		c.app.println("Delete cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	return c.deleteAt(ctx, index)
}

func (c *DeleteCommand) deleteAt(ctx context.Context, index int) error {
	record, notices, err := c.app.tracker.DeleteRecord(ctx, index)
	if err != nil {
		return err
	}
	c.app.printNotices(notices)
	c.app.println(c.app.formatter.Dim(c.app.formatter.Record(record)))
	return nil
}
