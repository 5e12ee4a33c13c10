package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"ot-tracker/internal/config"
	"ot-tracker/internal/domain"
	"ot-tracker/internal/services"
)

func newTestFormatter(currency, unit string) *Formatter {
	cfg := config.NewConfig()
	cfg.Display.Currency = currency
	cfg.Display.HoursUnit = unit
	return NewFormatter(&bytes.Buffer{}, cfg)
}

func TestFormatter_MoneyAndHours(t *testing.T) {
	f := newTestFormatter("฿", "hrs")
	assert.Equal(t, "1200.00 ฿", f.Money(1200))
	assert.Equal(t, "0.10 ฿", f.Money(0.1))
	assert.Equal(t, "7.75 hrs", f.Hours(7.75))

	bare := newTestFormatter("", "")
	assert.Equal(t, "12.50", bare.Money(12.5))
	assert.Equal(t, "2.00", bare.Hours(2))
}

func TestFormatter_PlainOutputWhenNotTerminal(t *testing.T) {
	f := newTestFormatter("฿", "hrs")

	assert.Equal(t, "✓ Settings saved", f.Notice(services.Notice{Level: services.NoticeSuccess, Message: "Settings saved"}))
	assert.Equal(t, "✗ failed", f.Notice(services.Notice{Level: services.NoticeError, Message: "failed"}))
	assert.NotContains(t, f.Header("Summary"), "\x1b[")
}

func TestFormatter_Record(t *testing.T) {
	f := newTestFormatter("฿", "hrs")
	r := domain.NewOTRecord("id", domain.MustParseDate("2026-10-19"), domain.MustParseClockTime("22:00"),
		domain.MustParseClockTime("06:00"), "", domain.Settings{HourlyRate: 100, OTMultiplier: 1.5})

	assert.Equal(t, "2026-10-19  22:00-06:00  8.00 hrs  1200.00 ฿  -", f.Record(r))
}

func TestFormatter_TableAlignsWideCells(t *testing.T) {
	f := newTestFormatter("฿", "hrs")

	out := f.Table([]string{"A", "B"}, [][]string{{"โอที", "x"}, {"long value", "y"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2][:strings.Index(lines[2], "x")]),
		lipgloss.Width(lines[3][:strings.Index(lines[3], "y")]),
		"columns align on visible width")
	assert.Equal(t, "", f.Table(nil, nil))
}

func TestFormatter_Settings(t *testing.T) {
	f := newTestFormatter("฿", "hrs")

	out := f.Settings(domain.Settings{HourlyRate: 100, OTMultiplier: 2})

	assert.Contains(t, out, "Hourly rate:    100.00 ฿")
	assert.Contains(t, out, "OT multiplier:  2x")
	assert.NotContains(t, out, "Set an hourly rate")
}

func TestMonthPeriod(t *testing.T) {
	assert.Equal(t, "October 2026", MonthPeriod(domain.MustParseDate("2026-10-19")))
}
