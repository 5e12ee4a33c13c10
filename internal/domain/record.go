package domain

import "strings"

// OTRecord is a single overtime session. Earnings are fixed at creation
// time from the settings then in effect and are never recomputed.
type OTRecord struct {
	ID            string    `json:"id,omitempty"`
	Date          Date      `json:"date"`
	StartTime     ClockTime `json:"startTime"`
	EndTime       ClockTime `json:"endTime"`
	DurationHours float64   `json:"duration"`
	Description   string    `json:"description"`
	Earnings      float64   `json:"earnings"`
}

// NewOTRecord builds a record, computing its duration and earnings against
// the given settings.
func NewOTRecord(id string, date Date, start, end ClockTime, description string, settings Settings) OTRecord {
	hours := CalculateDuration(start, end)
	return OTRecord{
		ID:            id,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
		Description:   strings.TrimSpace(description),
		Earnings:      CalculateEarnings(hours, settings),
	}
}

// IsValid checks that the record has a date and non-negative amounts.
func (r OTRecord) IsValid() bool {
	if r.Date.IsZero() {
		return false
	}
	if !isFinite(r.DurationHours) || r.DurationHours < 0 {
		return false
	}
	return isFinite(r.Earnings) && r.Earnings >= 0
}

// DisplayDescription returns the description, or "-" when empty.
func (r OTRecord) DisplayDescription() string {
	if r.Description == "" {
		return "-"
	}
	return r.Description
}

// PrependRecord returns a new slice with record at the head. The input slice
// is not modified.
func PrependRecord(records []OTRecord, record OTRecord) []OTRecord {
	out := make([]OTRecord, 0, len(records)+1)
	out = append(out, record)
	return append(out, records...)
}

// RemoveRecordAt returns a new slice without the record at index, keeping
// the order of the rest. ok is false, and records is returned unchanged,
// when index is out of range.
func RemoveRecordAt(records []OTRecord, index int) (out []OTRecord, ok bool) {
	if index < 0 || index >= len(records) {
		return records, false
	}
	out = make([]OTRecord, 0, len(records)-1)
	out = append(out, records[:index]...)
	return append(out, records[index+1:]...), true
}
