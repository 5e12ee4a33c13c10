package validation

import (
	"ot-tracker/internal/domain"
)

// SettingsValidator validates hourly rate and OT multiplier
type SettingsValidator struct {
	validator *Validator
}

// NewSettingsValidator creates a new settings validator
func NewSettingsValidator(v *Validator) *SettingsValidator {
	if v == nil {
		v = NewValidator()
	}
	return &SettingsValidator{validator: v}
}

// Validate enforces hourlyRate >= 0 and otMultiplier >= 1
func (sv *SettingsValidator) Validate(settings domain.Settings) error {
	validationError := NewValidationError()

	if !domain.ValidHourlyRate(settings.HourlyRate) {
		validationError.AddInvalidValueError("hourly_rate", settings.HourlyRate, "must be a number that is not negative")
	}
	if !domain.ValidOTMultiplier(settings.OTMultiplier) {
		validationError.AddInvalidValueError("ot_multiplier", settings.OTMultiplier, "must be a number not less than 1")
	}

	return validationError.ErrOrNil()
}

// ParseAndValidate parses raw rate and multiplier strings into Settings
func (sv *SettingsValidator) ParseAndValidate(rate, multiplier string) (domain.Settings, error) {
	validationError := NewValidationError()

	r, ok := sv.validator.ParseDecimal(rate)
	if !ok {
		validationError.AddInvalidValueError("hourly_rate", rate, "must be a number that is not negative")
	}
	m, ok := sv.validator.ParseDecimal(multiplier)
	if !ok {
		validationError.AddInvalidValueError("ot_multiplier", multiplier, "must be a number not less than 1")
	}
	if validationError.HasErrors() {
		return domain.Settings{}, validationError
	}

	settings := domain.Settings{HourlyRate: r, OTMultiplier: m}
	if err := sv.Validate(settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
