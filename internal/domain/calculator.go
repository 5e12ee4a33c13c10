package domain

import (
	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// CalculateDuration returns the hours elapsed between start and end, rounded
// to 2 decimal places. Both times are taken to be on the same day; when end
// is strictly earlier than start the shift is taken to cross midnight and end
// moves to the next day. Equal times yield zero.
func CalculateDuration(start, end ClockTime) float64 {
	startSecs := start.SecondsOfDay()
	endSecs := end.SecondsOfDay()
	if end.Before(start) {
		endSecs += secondsPerDay
	}

	elapsed := decimal.NewFromInt(int64(endSecs - startSecs))
	return elapsed.Div(secondsPerHour).Round(2).InexactFloat64()
}

// CalculateEarnings returns hours x rate x multiplier rounded to 2 decimal
// places. A rate that is not a positive number yields 0.
func CalculateEarnings(hours float64, settings Settings) float64 {
	if !settings.HasRate() || !isFinite(hours) || !isFinite(settings.OTMultiplier) {
		return 0
	}

	earnings := decimal.NewFromFloat(hours).
		Mul(decimal.NewFromFloat(settings.HourlyRate)).
		Mul(decimal.NewFromFloat(settings.OTMultiplier)).
		Round(2)
	if earnings.IsNegative() {
		return 0
	}
	return earnings.InexactFloat64()
}
