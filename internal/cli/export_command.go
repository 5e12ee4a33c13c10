package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"ot-tracker/internal/config"
	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app *App
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute writes all records to the output as CSV or JSON. An empty format
// uses the configured default.
func (c *ExportCommand) Execute(ctx context.Context, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = c.app.config.Commands.ExportDefaultFormat
	}
	if format != config.FormatCSV && format != config.FormatJSON {
		return errors.NewInvalidInputError("format", format, "supported formats are csv and json")
	}

	records, err := c.app.tracker.ListRecords(ctx)
	if err != nil {
		return err
	}
	c.app.logger.DebugContext(ctx, "exporting records", "format", format, "count", len(records))

	if format == config.FormatJSON {
		return c.exportJSON(records)
	}
	return c.exportCSV(records)
}

// exportJSON writes the records in their stored layout
func (c *ExportCommand) exportJSON(records []domain.OTRecord) error {
	enc := json.NewEncoder(c.app.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func (c *ExportCommand) exportCSV(records []domain.OTRecord) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Date", "Start Time", "End Time", "Duration (hours)", "Description", "Earnings"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Date.String(),
			r.StartTime.String(),
			r.EndTime.String(),
			fmt.Sprintf("%.2f", r.DurationHours),
			r.Description,
			fmt.Sprintf("%.2f", r.Earnings),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
