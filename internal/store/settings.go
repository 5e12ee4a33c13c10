package store

import (
	"context"
	"encoding/json"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
	"ot-tracker/internal/validation"
)

// SettingsStore keeps the pay settings under SettingsKey
type SettingsStore struct {
	kv        KeyValueStore
	validator *validation.SettingsValidator
	logger    *logging.Logger
}

// NewSettingsStore creates a settings store on top of kv
func NewSettingsStore(kv KeyValueStore, logger *logging.Logger) *SettingsStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SettingsStore{
		kv:        kv,
		validator: validation.NewSettingsValidator(nil),
		logger:    logger.WithComponent(logging.ComponentStore),
	}
}

// Load returns the saved settings. Fields missing from the stored document
// take their default; an unreadable or invalid document yields the defaults.
func (s *SettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	blob, found, err := s.kv.Get(ctx, SettingsKey)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal([]byte(blob), &settings); err != nil {
		s.logger.WarnContext(ctx, "stored settings are malformed, using defaults",
			logging.FieldKey, SettingsKey, logging.FieldError, err.Error())
		return domain.DefaultSettings(), nil
	}
	if !settings.IsValid() {
		s.logger.WarnContext(ctx, "stored settings are out of range, using defaults",
			logging.FieldKey, SettingsKey, "hourly_rate", settings.HourlyRate, "ot_multiplier", settings.OTMultiplier)
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// Save validates and persists settings. Rejected settings are not written.
func (s *SettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	if err := s.validator.Validate(settings); err != nil {
		return err
	}
	blob, err := json.Marshal(settings)
	if err != nil {
		return errors.NewEncodeError(SettingsKey, err)
	}
	err = s.kv.Set(ctx, SettingsKey, string(blob))
	s.logger.Operation(ctx, "settings.save", err, "hourly_rate", settings.HourlyRate, "ot_multiplier", settings.OTMultiplier)
	return err
}
