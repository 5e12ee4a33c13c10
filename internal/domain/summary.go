package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Window selects which records a summary covers, anchored to "now".
type Window int

const (
	WindowDay Window = iota
	WindowMonth
	WindowYear
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowMonth:
		return "month"
	case WindowYear:
		return "year"
	default:
		return "unknown"
	}
}

// ParseWindow accepts day/daily, month/monthly and year/yearly.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return WindowDay, nil
	case "month", "monthly":
		return WindowMonth, nil
	case "year", "yearly":
		return WindowYear, nil
	default:
		return 0, fmt.Errorf("unknown summary window %q: expected day, month or year", s)
	}
}

// Contains reports whether a record dated recordDate falls in the window.
// day is the exact day matched by WindowDay; today anchors month and year.
func (w Window) Contains(recordDate, day, today Date) bool {
	switch w {
	case WindowDay:
		return recordDate.Equal(day)
	case WindowMonth:
		return recordDate.SameMonth(today)
	case WindowYear:
		return recordDate.SameYear(today)
	default:
		return false
	}
}

// Totals is the sum of hours and earnings over the records in a window.
type Totals struct {
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
	Count    int     `json:"count"`
}

// Summary holds the three independent window totals.
type Summary struct {
	Day     Date   `json:"day"`
	Daily   Totals `json:"daily"`
	Monthly Totals `json:"monthly"`
	Yearly  Totals `json:"yearly"`
}

type accumulator struct {
	hours    decimal.Decimal
	earnings decimal.Decimal
	count    int
}

func (a *accumulator) add(r OTRecord) {
	a.hours = a.hours.Add(decimal.NewFromFloat(r.DurationHours))
	a.earnings = a.earnings.Add(decimal.NewFromFloat(r.Earnings))
	a.count++
}

func (a accumulator) totals() Totals {
	return Totals{
		Hours:    a.hours.Round(2).InexactFloat64(),
		Earnings: a.earnings.Round(2).InexactFloat64(),
		Count:    a.count,
	}
}

// Summarize totals the records in a single window. For WindowDay, day selects
// the calendar day; nil means the day of now.
func Summarize(records []OTRecord, window Window, now time.Time, day *Date) Totals {
	today := DateOf(now)
	target := today
	if day != nil {
		target = *day
	}

	var acc accumulator
	for _, r := range records {
		if window.Contains(r.Date, target, today) {
			acc.add(r)
		}
	}
	return acc.totals()
}

// SummarizeAll computes daily, monthly and yearly totals in one pass. A
// record is counted in every window it falls in.
func SummarizeAll(records []OTRecord, now time.Time, day *Date) Summary {
	today := DateOf(now)
	target := today
	if day != nil {
		target = *day
	}

	var daily, monthly, yearly accumulator
	for _, r := range records {
		if WindowDay.Contains(r.Date, target, today) {
			daily.add(r)
		}
		if WindowMonth.Contains(r.Date, target, today) {
			monthly.add(r)
		}
		if WindowYear.Contains(r.Date, target, today) {
			yearly.add(r)
		}
	}

	return Summary{
		Day:     target,
		Daily:   daily.totals(),
		Monthly: monthly.totals(),
		Yearly:  yearly.totals(),
	}
}
