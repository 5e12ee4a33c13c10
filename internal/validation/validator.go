package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"ot-tracker/internal/config"
)

const defaultDescriptionMaxLength = 500

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// NormalizeDescription trims the description and composes it to NFC, so a
// character typed as base letter plus combining mark counts once.
func (v *Validator) NormalizeDescription(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsValidDescriptionLength checks the normalized description against the configured limit
func (v *Validator) IsValidDescriptionLength(s string) bool {
	return utf8.RuneCountInString(v.NormalizeDescription(s)) <= v.DescriptionMaxLength()
}

// ParseDecimal parses a user supplied number in plain decimal notation.
// Either "." or "," may be the decimal separator; see normalizeSeparators
// for how grouping is told apart. Hex, NaN and infinities are rejected.
func (v *Validator) ParseDecimal(s string) (float64, bool) {
	s, ok := normalizeSeparators(strings.TrimSpace(s))
	if !ok || s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// normalizeSeparators rewrites s so "." is the only decimal separator. When
// both separators appear, the last one is the decimal separator and the other
// is grouping. A lone "," is a decimal separator; repeated commas or repeated
// dots are grouping.
func normalizeSeparators(s string) (string, bool) {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		sep, group := ".", ","
		if lastComma > lastDot {
			sep, group = ",", "."
		}
		s = strings.ReplaceAll(s, group, "")
		if strings.Count(s, sep) > 1 {
			return "", false
		}
		return strings.Replace(s, sep, ".", 1), true
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			return strings.Replace(s, ",", ".", 1), true
		}
		return strings.ReplaceAll(s, ",", ""), true
	case strings.Count(s, ".") > 1:
		return strings.ReplaceAll(s, ".", ""), true
	}
	return s, true
}

// IsValidIndex checks that index addresses an element of a list of length n
func (v *Validator) IsValidIndex(index, n int) bool {
	return index >= 0 && index < n
}

// DescriptionMaxLength returns the configured description limit or the default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil && v.config.Validation.DescriptionMaxLength > 0 {
		return v.config.Validation.DescriptionMaxLength
	}
	return defaultDescriptionMaxLength
}
