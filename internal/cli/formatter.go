package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ot-tracker/internal/config"
	"ot-tracker/internal/domain"
	"ot-tracker/internal/services"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorRed    = lipgloss.Color("#fb4934")
	colorYellow = lipgloss.Color("#fabd2f")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

const colGap = 2

// Formatter renders records, summaries and notices for the terminal. Colors
// are dropped when the output is not a terminal.
type Formatter struct {
	currency  string
	hoursUnit string

	header lipgloss.Style
	dim    lipgloss.Style
	green  lipgloss.Style
	red    lipgloss.Style
	yellow lipgloss.Style
	bold   lipgloss.Style
}

// NewFormatter creates a formatter for out
func NewFormatter(out io.Writer, cfg *config.Config) *Formatter {
	r := lipgloss.NewRenderer(out)
	if !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Formatter{
		currency:  cfg.Display.Currency,
		hoursUnit: cfg.Display.HoursUnit,
		header:    r.NewStyle().Foreground(colorHeader).Bold(true),
		dim:       r.NewStyle().Foreground(colorDim),
		green:     r.NewStyle().Foreground(colorGreen),
		red:       r.NewStyle().Foreground(colorRed),
		yellow:    r.NewStyle().Foreground(colorYellow),
		bold:      r.NewStyle().Bold(true),
	}
}

// Money formats an amount with two decimals and the currency symbol
func (f *Formatter) Money(amount float64) string {
	if f.currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, f.currency)
}

// Hours formats a duration in hours with two decimals
func (f *Formatter) Hours(hours float64) string {
	if f.hoursUnit == "" {
		return fmt.Sprintf("%.2f", hours)
	}
	return fmt.Sprintf("%.2f %s", hours, f.hoursUnit)
}

// Notice renders a user message
func (f *Formatter) Notice(n services.Notice) string {
	if n.Level == services.NoticeError {
		return f.red.Render("✗ " + n.Message)
	}
	return f.green.Render("✓ " + n.Message)
}

// Header renders a section title with an underline
func (f *Formatter) Header(text string) string {
	upper := strings.ToUpper(text)
	return f.header.Render(upper) + "\n" + f.dim.Render(strings.Repeat("─", lipgloss.Width(upper)))
}

// Record renders a one-line description of a record
func (f *Formatter) Record(r domain.OTRecord) string {
	return fmt.Sprintf("%s  %s-%s  %s  %s  %s",
		r.Date, r.StartTime, r.EndTime, f.Hours(r.DurationHours), f.bold.Render(f.Money(r.Earnings)), r.DisplayDescription())
}

// Records renders the record table. Row numbers are the 1-based positions
// accepted by the delete command.
func (f *Formatter) Records(records []domain.OTRecord) string {
	headers := []string{"#", "Date", "Start", "End", "Hours", "Earnings", "Description"}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Date.String(),
			r.StartTime.String(),
			r.EndTime.String(),
			fmt.Sprintf("%.2f", r.DurationHours),
			f.Money(r.Earnings),
			r.DisplayDescription(),
		})
	}
	return f.Table(headers, rows)
}

// Summary renders the daily, monthly and yearly totals. Month and year are
// anchored to today even when the daily window shows another day.
func (f *Formatter) Summary(s domain.Summary, today domain.Date) string {
	headers := []string{"Window", "Period", "Hours", "Earnings", "Records"}
	rows := [][]string{
		f.totalsRow(windowLabel(domain.WindowDay), s.Day.String(), s.Daily),
		f.totalsRow(windowLabel(domain.WindowMonth), MonthPeriod(today), s.Monthly),
		f.totalsRow(windowLabel(domain.WindowYear), strconv.Itoa(today.Year), s.Yearly),
	}
	return f.Header("Summary") + "\n" + f.Table(headers, rows)
}

// Totals renders a single window's totals
func (f *Formatter) Totals(window domain.Window, period string, t domain.Totals) string {
	headers := []string{"Window", "Period", "Hours", "Earnings", "Records"}
	return f.Table(headers, [][]string{f.totalsRow(windowLabel(window), period, t)})
}

func windowLabel(w domain.Window) string {
	switch w {
	case domain.WindowDay:
		return "Daily"
	case domain.WindowMonth:
		return "Monthly"
	default:
		return "Yearly"
	}
}

// MonthPeriod labels the month containing d, e.g. "October 2026"
func MonthPeriod(d domain.Date) string {
	return fmt.Sprintf("%s %d", d.Month, d.Year)
}

func (f *Formatter) totalsRow(label, period string, t domain.Totals) []string {
	return []string{label, period, f.Hours(t.Hours), f.Money(t.Earnings), strconv.Itoa(t.Count)}
}

// Settings renders the pay settings
func (f *Formatter) Settings(s domain.Settings) string {
	var b strings.Builder
	b.WriteString(f.Header("Settings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hourly rate:    %s\n", f.Money(s.HourlyRate))
	fmt.Fprintf(&b, "OT multiplier:  %sx\n", strconv.FormatFloat(s.OTMultiplier, 'f', -1, 64))
	if !s.HasRate() {
		b.WriteString(f.yellow.Render("Set an hourly rate with `ot settings set --rate` before recording overtime."))
		b.WriteString("\n")
	}
	return b.String()
}

// Dim renders text in the muted color
func (f *Formatter) Dim(text string) string {
	return f.dim.Render(text)
}

// Table renders an aligned table with a header separator line. Widths are
// measured on visible characters so styled cells line up.
func (f *Formatter) Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeCell := func(i int, styled string, visible int) {
		b.WriteString(styled)
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", max(widths[i]-visible, 0)+colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, f.header.Render(h), lipgloss.Width(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		writeCell(i, f.dim.Render(strings.Repeat("─", w)), w)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, lipgloss.Width(cell))
		}
		b.WriteString("\n")
	}

	return b.String()
}
