// Package store persists overtime records and settings as JSON documents in
// a key-value backend.
package store

import "context"

// Persistence keys. They match the keys used by earlier versions of the
// tracker so existing data loads unchanged.
const (
	RecordsKey  = "otRecords"
	SettingsKey = "appSettings"
)

// KeyValueStore is the persistence port. Implementations live under
// internal/repository.
type KeyValueStore interface {
	// Get returns the value under key; found is false when it was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
