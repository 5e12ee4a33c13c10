package domain

import "math"

const (
	// DefaultHourlyRate is unset; records cannot be created until it is raised.
	DefaultHourlyRate = 0
	// DefaultOTMultiplier is "time and a half".
	DefaultOTMultiplier = 1.5
	// MinOTMultiplier is the smallest multiplier that can be saved.
	MinOTMultiplier = 1
)

// Settings holds the pay parameters used when a record is created.
type Settings struct {
	HourlyRate   float64 `json:"hourlyRate"`
	OTMultiplier float64 `json:"otMultiplier"`
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:   DefaultHourlyRate,
		OTMultiplier: DefaultOTMultiplier,
	}
}

// HasRate reports whether an hourly rate has been configured. Records may
// only be created when this is true.
func (s Settings) HasRate() bool {
	return isFinite(s.HourlyRate) && s.HourlyRate > 0
}

// IsValid checks the save-time invariants: rate >= 0 and multiplier >= 1.
func (s Settings) IsValid() bool {
	return ValidHourlyRate(s.HourlyRate) && ValidOTMultiplier(s.OTMultiplier)
}

// ValidHourlyRate reports whether rate is a finite number >= 0.
func ValidHourlyRate(rate float64) bool {
	return isFinite(rate) && rate >= 0
}

// ValidOTMultiplier reports whether m is a finite number >= 1.
func ValidOTMultiplier(m float64) bool {
	return isFinite(m) && m >= MinOTMultiplier
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
