package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/repository/memory"
	"ot-tracker/internal/validation"
)

func TestSettingsStore_LoadDefaults(t *testing.T) {
	s := NewSettingsStore(memory.New(), nil)

	got, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{HourlyRate: 0, OTMultiplier: 1.5}, got)
}

func TestSettingsStore_LoadStored(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want domain.Settings
	}{
		{"full", `{"hourlyRate":100,"otMultiplier":2}`, domain.Settings{HourlyRate: 100, OTMultiplier: 2}},
		{"missing multiplier", `{"hourlyRate":100}`, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}},
		{"missing rate", `{"otMultiplier":3}`, domain.Settings{HourlyRate: 0, OTMultiplier: 3}},
		{"malformed", `{"hourlyRate":`, domain.DefaultSettings()},
		{"wrong types", `{"hourlyRate":"100"}`, domain.DefaultSettings()},
		{"out of range", `{"hourlyRate":100,"otMultiplier":0.5}`, domain.DefaultSettings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettingsStore(memory.NewWithEntries(map[string]string{SettingsKey: tt.blob}), nil)

			got, err := s.Load(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsStore_Save(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := NewSettingsStore(kv, nil)

	require.NoError(t, s.Save(ctx, domain.Settings{HourlyRate: 150, OTMultiplier: 2}))

	blob, found, err := kv.Get(ctx, SettingsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"hourlyRate":150,"otMultiplier":2}`, blob)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{HourlyRate: 150, OTMultiplier: 2}, got)
}

func TestSettingsStore_SaveRejected(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore(memory.New(), nil)
	require.NoError(t, s.Save(ctx, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}))

	err := s.Save(ctx, domain.Settings{HourlyRate: 100, OTMultiplier: 0.5})

	assert.True(t, validation.IsValidationError(err))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}, got)
}
