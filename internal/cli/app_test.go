package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"ot-tracker/internal/config"
	"ot-tracker/internal/repository/memory"
	"ot-tracker/internal/services"
	"ot-tracker/internal/store"
)

var fixedNow = time.Date(2026, time.October, 19, 21, 30, 0, 0, time.Local)

// fakePrompter fills missing form fields from form and answers menus with
// the configured values.
type fakePrompter struct {
	form      RecordFormValues
	formErr   error
	formCalls int

	selected  int
	selectErr error
	options   []string

	confirm    bool
	confirmErr error
}

func (p *fakePrompter) RecordForm(values *RecordFormValues) error {
	p.formCalls++
	if p.formErr != nil {
		return p.formErr
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&values.Date, p.form.Date)
	fill(&values.StartTime, p.form.StartTime)
	fill(&values.EndTime, p.form.EndTime)
	fill(&values.Description, p.form.Description)
	return nil
}

func (p *fakePrompter) SelectRecord(title string, options []string) (int, error) {
	p.options = options
	return p.selected, p.selectErr
}

func (p *fakePrompter) Confirm(title string) (bool, error) {
	return p.confirm, p.confirmErr
}

type testEnv struct {
	app      *App
	out      *bytes.Buffer
	tracker  *services.TrackerService
	kv       *memory.Repository
	prompter *fakePrompter
}

func newTestEnv(t *testing.T, interactive bool) *testEnv {
	t.Helper()

	kv := memory.New()
	ids := 0
	tracker := services.NewTrackerService(
		store.NewRecordStore(kv, nil),
		store.NewSettingsStore(kv, nil),
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(func() string { ids++; return fmt.Sprintf("rec-%d", ids) }),
	)

	out := &bytes.Buffer{}
	app := NewAppWithOutput(tracker, config.NewConfig(), nil, out)
	prompter := &fakePrompter{}
	app.prompter = prompter
	app.interactive = func() bool { return interactive }

	return &testEnv{app: app, out: out, tracker: tracker, kv: kv, prompter: prompter}
}

func (e *testEnv) setRate(t *testing.T) {
	t.Helper()
	_, _, err := e.tracker.SaveSettings(t.Context(), services.SettingsInput{HourlyRate: "100", OTMultiplier: "1.5"})
	if err != nil {
		t.Fatalf("save settings: %v", err)
	}
}

func (e *testEnv) addRecord(t *testing.T, date, start, end, description string) {
	t.Helper()
	_, _, err := e.tracker.AddRecord(t.Context(), services.RecordInput{
		Date: date, StartTime: start, EndTime: end, Description: description,
	})
	if err != nil {
		t.Fatalf("add record: %v", err)
	}
}
