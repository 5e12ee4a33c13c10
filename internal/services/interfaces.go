package services

import (
	"context"

	"ot-tracker/internal/domain"
)

// RecordRepository persists the ordered record list
type RecordRepository interface {
	LoadAll(ctx context.Context) ([]domain.OTRecord, error)
	Add(ctx context.Context, record domain.OTRecord) ([]domain.OTRecord, error)
	Delete(ctx context.Context, index int) ([]domain.OTRecord, bool, error)
}

// SettingsRepository persists the pay settings
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
