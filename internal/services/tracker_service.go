package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
	"ot-tracker/internal/validation"
)

// TrackerService loads state from the stores, applies a command and runs the
// resulting effects. It is the only place where commands touch persistence.
type TrackerService struct {
	records  RecordRepository
	settings SettingsRepository
	commands *Commands
	logger   *logging.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a TrackerService
type Option func(*TrackerService)

// WithClock replaces the wall clock used for "today"
func WithClock(now func() time.Time) Option {
	return func(s *TrackerService) { s.now = now }
}

// WithIDGenerator replaces the record id generator
func WithIDGenerator(newID func() string) Option {
	return func(s *TrackerService) { s.newID = newID }
}

// WithLogger sets the service logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *TrackerService) { s.logger = logger }
}

// WithValidator sets the validator whose limits the commands use
func WithValidator(v *validation.Validator) Option {
	return func(s *TrackerService) { s.commands = NewCommands(v) }
}

// NewTrackerService creates a new tracker service
func NewTrackerService(records RecordRepository, settings SettingsRepository, opts ...Option) *TrackerService {
	s := &TrackerService{
		records:  records,
		settings: settings,
		commands: NewCommands(nil),
		logger:   logging.Discard(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent(logging.ComponentService)
	return s
}

// Today returns the current local calendar day
func (s *TrackerService) Today() domain.Date {
	return domain.DateOf(s.now())
}

// LoadState reads records and settings from the stores. The two keys are
// independent, so they are read concurrently.
func (s *TrackerService) LoadState(ctx context.Context) (State, error) {
	var state State
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.records.LoadAll(gctx)
		state.Records = records
		return err
	})
	g.Go(func() error {
		settings, err := s.settings.Load(gctx)
		state.Settings = settings
		return err
	})
	if err := g.Wait(); err != nil {
		return State{}, err
	}
	return state, nil
}

// ListRecords returns all records, newest first
func (s *TrackerService) ListRecords(ctx context.Context) ([]domain.OTRecord, error) {
	return s.records.LoadAll(ctx)
}

// Settings returns the settings in effect
func (s *TrackerService) Settings(ctx context.Context) (domain.Settings, error) {
	return s.settings.Load(ctx)
}

// AddRecord creates a record from raw input using the settings in effect
func (s *TrackerService) AddRecord(ctx context.Context, in RecordInput) (domain.OTRecord, []Notice, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return domain.OTRecord{}, nil, err
	}
	if in.ID == "" {
		in.ID = s.newID()
	}

	_, effects, err := s.commands.AddRecord(state, in)
	if err != nil {
		s.logger.DebugContext(ctx, "add rejected", logging.FieldError, err.Error())
		return domain.OTRecord{}, nil, err
	}

	notices, err := s.apply(ctx, effects)
	if err != nil {
		return domain.OTRecord{}, nil, err
	}
	return effects[0].(RecordAdded).Record, notices, nil
}

// DeleteRecord removes the record at the zero-based index
func (s *TrackerService) DeleteRecord(ctx context.Context, index int) (domain.OTRecord, []Notice, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return domain.OTRecord{}, nil, err
	}

	_, effects, err := s.commands.DeleteRecord(state, index)
	if err != nil {
		return domain.OTRecord{}, nil, err
	}

	notices, err := s.apply(ctx, effects)
	if err != nil {
		return domain.OTRecord{}, nil, err
	}
	return effects[0].(RecordDeleted).Record, notices, nil
}

// SaveSettings parses, validates and stores new settings. A rejected input
// leaves the stored settings unchanged.
func (s *TrackerService) SaveSettings(ctx context.Context, in SettingsInput) (domain.Settings, []Notice, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return domain.Settings{}, nil, err
	}

	next, effects, err := s.commands.UpdateSettings(state, in)
	if err != nil {
		return state.Settings, nil, err
	}

	notices, err := s.apply(ctx, effects)
	if err != nil {
		return state.Settings, nil, err
	}
	return next.Settings, notices, nil
}

// Summary computes daily, monthly and yearly totals. day selects the daily
// window; nil means today.
func (s *TrackerService) Summary(ctx context.Context, day *domain.Date) (domain.Summary, error) {
	records, err := s.records.LoadAll(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.SummarizeAll(records, s.now(), day), nil
}

// SummaryWindow totals a single window
func (s *TrackerService) SummaryWindow(ctx context.Context, window domain.Window, day *domain.Date) (domain.Totals, error) {
	records, err := s.records.LoadAll(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.Summarize(records, window, s.now(), day), nil
}

// apply executes effects in order and collects the notices
func (s *TrackerService) apply(ctx context.Context, effects []Effect) ([]Notice, error) {
	var notices []Notice
	for _, e := range effects {
		switch e := e.(type) {
		case RecordAdded:
			_, err := s.records.Add(ctx, e.Record)
			s.logger.Operation(ctx, "record.add", err, logging.FieldRecordID, e.Record.ID,
				"date", e.Record.Date.String(), "hours", e.Record.DurationHours)
			if err != nil {
				return nil, err
			}
		case RecordDeleted:
			_, removed, err := s.records.Delete(ctx, e.Index)
			s.logger.Operation(ctx, "record.delete", err, logging.FieldIndex, e.Index, logging.FieldRecordID, e.Record.ID)
			if err != nil {
				return nil, err
			}
			if !removed {
				return nil, errors.NewRecordNotFoundError(e.Index + 1)
			}
		case SettingsSaved:
			err := s.settings.Save(ctx, e.Settings)
			s.logger.Operation(ctx, "settings.save", err)
			if err != nil {
				return nil, err
			}
		case Notice:
			notices = append(notices, e)
		}
	}
	return notices, nil
}
