package services

import (
	"ot-tracker/internal/domain"
	"ot-tracker/internal/validation"
)

// User-facing notices
const (
	MsgRecordSaved   = "OT record saved"
	MsgRecordDeleted = "OT record deleted"
	MsgSettingsSaved = "Settings saved"
)

// Commands maps user actions to state transitions. Every method is pure: it
// returns a new State and the effects needed to persist it, and leaves the
// input State untouched. A rejected command returns the input State, no
// effects and the validation error.
type Commands struct {
	records  *validation.RecordValidator
	settings *validation.SettingsValidator
}

// NewCommands creates the command set using v for field limits
func NewCommands(v *validation.Validator) *Commands {
	if v == nil {
		v = validation.NewValidator()
	}
	return &Commands{
		records:  validation.NewRecordValidator(v),
		settings: validation.NewSettingsValidator(v),
	}
}

// AddRecord validates the input against the current settings and puts the
// new record at the head of the list.
func (c *Commands) AddRecord(state State, in RecordInput) (State, []Effect, error) {
	parsed, err := c.records.ValidateForCreation(validation.RecordFields{
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
	}, state.Settings)
	if err != nil {
		return state, nil, err
	}

	record := domain.NewOTRecord(in.ID, parsed.Date, parsed.StartTime, parsed.EndTime, parsed.Description, state.Settings)

	next := State{
		Records:  domain.PrependRecord(state.Records, record),
		Settings: state.Settings,
	}
	return next, []Effect{
		RecordAdded{Record: record},
		Notice{Level: NoticeSuccess, Message: MsgRecordSaved},
	}, nil
}

// DeleteRecord removes the record at the zero-based index
func (c *Commands) DeleteRecord(state State, index int) (State, []Effect, error) {
	if err := c.records.ValidateIndex(index, len(state.Records)); err != nil {
		return state, nil, err
	}

	removed := state.Records[index]
	records, _ := domain.RemoveRecordAt(state.Records, index)

	next := State{Records: records, Settings: state.Settings}
	return next, []Effect{
		RecordDeleted{Index: index, Record: removed},
		Notice{Level: NoticeSuccess, Message: MsgRecordDeleted},
	}, nil
}

// UpdateSettings parses and validates the form values and replaces the
// settings wholesale. Existing records keep their stored earnings.
func (c *Commands) UpdateSettings(state State, in SettingsInput) (State, []Effect, error) {
	settings, err := c.settings.ParseAndValidate(in.HourlyRate, in.OTMultiplier)
	if err != nil {
		return state, nil, err
	}

	next := State{Records: state.Records, Settings: settings}
	return next, []Effect{
		SettingsSaved{Settings: settings},
		Notice{Level: NoticeSuccess, Message: MsgSettingsSaved},
	}, nil
}
