package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"ot-tracker/internal/domain"
)

// errCancelled is returned by a Prompter when the user backs out
var errCancelled = stderrors.New("cancelled")

// RecordFormValues are the add-form fields. Pre-filled values are shown as
// defaults.
type RecordFormValues struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
}

// Prompter collects input interactively
type Prompter interface {
	RecordForm(values *RecordFormValues) error
	SelectRecord(title string, options []string) (int, error)
	Confirm(title string) (bool, error)
}

// huhPrompter implements Prompter with huh forms
type huhPrompter struct{}

func (huhPrompter) RecordForm(values *RecordFormValues) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder("2026-10-19").
				Value(&values.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Placeholder("18:00").
				Value(&values.StartTime).
				Validate(validateClock),
			huh.NewInput().
				Title("End time (HH:MM)").
				Placeholder("21:30").
				Value(&values.EndTime).
				Validate(validateClock),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&values.Description),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
	return mapAbort(form.Run())
}

func (huhPrompter) SelectRecord(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, label := range options {
		opts = append(opts, huh.NewOption(label, i))
	}
	var selected int
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()
	if err := mapAbort(err); err != nil {
		return 0, err
	}
	return selected, nil
}

func (huhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Keep").
		Value(&ok).
		Run()
	if err := mapAbort(err); err != nil {
		return false, err
	}
	return ok, nil
}

func mapAbort(err error) error {
	if stderrors.Is(err, huh.ErrUserAborted) {
		return errCancelled
	}
	return err
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := domain.ParseClockTime(s); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}
