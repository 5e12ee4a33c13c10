package services

import "ot-tracker/internal/domain"

// State is the application state every command operates on
type State struct {
	Records  []domain.OTRecord
	Settings domain.Settings
}

// RecordInput is the raw user input for the add command
type RecordInput struct {
	ID          string
	Date        string
	StartTime   string
	EndTime     string
	Description string
}

// SettingsInput is the raw user input for the settings form
type SettingsInput struct {
	HourlyRate   string
	OTMultiplier string
}

// NoticeLevel classifies a message for the user
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Effect is a side effect requested by a command. Commands never perform
// effects themselves; TrackerService executes them in order.
type Effect interface {
	effect()
}

// RecordAdded asks for Record to be stored at the head of the list
type RecordAdded struct {
	Record domain.OTRecord
}

// RecordDeleted asks for the record at Index to be removed
type RecordDeleted struct {
	Index  int
	Record domain.OTRecord
}

// SettingsSaved asks for Settings to replace the stored settings
type SettingsSaved struct {
	Settings domain.Settings
}

// Notice is a message for the presentation layer
type Notice struct {
	Level   NoticeLevel
	Message string
}

func (RecordAdded) effect()   {}
func (RecordDeleted) effect() {}
func (SettingsSaved) effect() {}
func (Notice) effect()        {}
