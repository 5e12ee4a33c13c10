package validation

import (
	"ot-tracker/internal/domain"
)

// RecordFields is the raw user input for a new overtime record.
type RecordFields struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
}

// ParsedRecord holds RecordFields after successful validation.
type ParsedRecord struct {
	Date        domain.Date
	StartTime   domain.ClockTime
	EndTime     domain.ClockTime
	Description string
}

// RecordValidator validates overtime record input
type RecordValidator struct {
	validator *Validator
}

// NewRecordValidator creates a new record validator
func NewRecordValidator(v *Validator) *RecordValidator {
	if v == nil {
		v = NewValidator()
	}
	return &RecordValidator{validator: v}
}

// ValidateForCreation checks the raw fields and the settings in effect. A
// record cannot be created until an hourly rate has been set.
func (rv *RecordValidator) ValidateForCreation(fields RecordFields, settings domain.Settings) (ParsedRecord, error) {
	validationError := NewValidationError()
	var parsed ParsedRecord

	if !settings.HasRate() {
		validationError.AddPreconditionError("hourly_rate", "set an hourly rate in settings before recording overtime")
	}

	if !rv.validator.IsNonEmptyString(fields.Date) {
		validationError.AddRequiredError("date")
	} else if d, err := domain.ParseDate(fields.Date); err != nil {
		validationError.AddInvalidFormatError("date", fields.Date, "YYYY-MM-DD")
	} else {
		parsed.Date = d
	}

	if !rv.validator.IsNonEmptyString(fields.StartTime) {
		validationError.AddRequiredError("start_time")
	} else if c, err := domain.ParseClockTime(fields.StartTime); err != nil {
		validationError.AddInvalidFormatError("start_time", fields.StartTime, "HH:MM")
	} else {
		parsed.StartTime = c
	}

	if !rv.validator.IsNonEmptyString(fields.EndTime) {
		validationError.AddRequiredError("end_time")
	} else if c, err := domain.ParseClockTime(fields.EndTime); err != nil {
		validationError.AddInvalidFormatError("end_time", fields.EndTime, "HH:MM")
	} else {
		parsed.EndTime = c
	}

	if !rv.validator.IsValidDescriptionLength(fields.Description) {
		validationError.AddTooLongError("description", fields.Description, rv.validator.DescriptionMaxLength())
	}
	parsed.Description = rv.validator.NormalizeDescription(fields.Description)

	if validationError.HasErrors() {
		return ParsedRecord{}, validationError
	}
	return parsed, nil
}

// ValidateIndex checks a zero-based record index against the list length
func (rv *RecordValidator) ValidateIndex(index, length int) error {
	if !rv.validator.IsValidIndex(index, length) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("index", index+1, "no record at that position")
		return validationError
	}
	return nil
}
