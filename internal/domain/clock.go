package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// ClockTime is a wall-clock time of day without a date or zone.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS" (24-hour clock).
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}

	values := make([]int, 3)
	limits := []int{23, 59, 59}
	for i, part := range parts {
		if len(part) == 0 || len(part) > 2 {
			return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
		}
		values[i] = n
	}

	return ClockTime{Hour: values[0], Minute: values[1], Second: values[2]}, nil
}

// MustParseClockTime is like ParseClockTime but panics on error.
func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SecondsOfDay returns the number of seconds since midnight.
func (c ClockTime) SecondsOfDay() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Before reports whether c is strictly earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.SecondsOfDay() < other.SecondsOfDay()
}

// String formats the time as HH:MM, or HH:MM:SS when seconds are set.
func (c ClockTime) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON encodes the time as a "HH:MM" string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a "HH:MM" or "HH:MM:SS" string.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
