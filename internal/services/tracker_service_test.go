package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
	"ot-tracker/internal/repository/memory"
	"ot-tracker/internal/store"
	"ot-tracker/internal/validation"
)

var fixedNow = time.Date(2026, time.October, 19, 21, 30, 0, 0, time.Local)

func newTestService(t *testing.T) (*TrackerService, *memory.Repository) {
	t.Helper()
	kv := memory.New()
	ids := 0
	svc := NewTrackerService(
		store.NewRecordStore(kv, nil),
		store.NewSettingsStore(kv, nil),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { ids++; return fmt.Sprintf("rec-%d", ids) }),
	)
	return svc, kv
}

func setRate(t *testing.T, svc *TrackerService) {
	t.Helper()
	_, _, err := svc.SaveSettings(context.Background(), SettingsInput{HourlyRate: "100", OTMultiplier: "1.5"})
	require.NoError(t, err)
}

func TestTrackerService_AddRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)

	record, notices, err := svc.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "22:00", EndTime: "06:00", Description: "cutover"})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", record.ID)
	assert.Equal(t, 8.0, record.DurationHours)
	assert.Equal(t, 1200.0, record.Earnings)
	assert.Equal(t, []Notice{{Level: NoticeSuccess, Message: MsgRecordSaved}}, notices)

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.OTRecord{record}, records)
}

func TestTrackerService_AddRecord_RequiresRate(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t)

	_, _, err := svc.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "18:00", EndTime: "20:00"})

	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.GetFieldErrors("hourly_rate"))
	_, found, _ := kv.Get(ctx, store.RecordsKey)
	assert.False(t, found, "nothing is written on rejection")
}

func TestTrackerService_DeleteRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)
	for _, d := range []string{"2026-10-17", "2026-10-18", "2026-10-19"} {
		_, _, err := svc.AddRecord(ctx, RecordInput{Date: d, StartTime: "18:00", EndTime: "19:00", Description: d})
		require.NoError(t, err)
	}

	removed, notices, err := svc.DeleteRecord(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", removed.Description)
	assert.Equal(t, MsgRecordDeleted, notices[0].Message)

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-10-19", records[0].Description)
	assert.Equal(t, "2026-10-17", records[1].Description)
}

func TestTrackerService_DeleteRecord_OutOfRange(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.DeleteRecord(context.Background(), 0)

	assert.True(t, validation.IsValidationError(err))
}

// shrinkingKV serves the stored records once, then reports an empty list as
// if another process had cleared it.
type shrinkingKV struct {
	*memory.Repository
	reads int
}

func (k *shrinkingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if key == store.RecordsKey {
		k.reads++
		if k.reads > 1 {
			return "[]", true, nil
		}
	}
	return k.Repository.Get(ctx, key)
}

func TestTrackerService_DeleteRecord_RecordGoneBeforeWrite(t *testing.T) {
	ctx := context.Background()
	kv := &shrinkingKV{Repository: memory.New()}
	seed := NewTrackerService(store.NewRecordStore(kv.Repository, nil), store.NewSettingsStore(kv.Repository, nil),
		WithClock(func() time.Time { return fixedNow }))
	setRate(t, seed)
	_, _, err := seed.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "18:00", EndTime: "19:00"})
	require.NoError(t, err)

	svc := NewTrackerService(store.NewRecordStore(kv, nil), store.NewSettingsStore(kv, nil),
		WithClock(func() time.Time { return fixedNow }))
	_, notices, err := svc.DeleteRecord(ctx, 0)

	require.Error(t, err)
	assert.Nil(t, notices)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	assert.Equal(t, errors.CodeRecordNotFound, errors.GetErrorCode(err))
	position, ok := errors.RecordPosition(err)
	require.True(t, ok)
	assert.Equal(t, 1, position)
}

func TestTrackerService_SaveSettings_Rejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)

	current, notices, err := svc.SaveSettings(ctx, SettingsInput{HourlyRate: "120", OTMultiplier: "0.5"})

	assert.True(t, validation.IsValidationError(err))
	assert.Nil(t, notices)
	assert.Equal(t, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}, current)

	stored, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}, stored)
}

func TestTrackerService_SettingsChangeKeepsEarnings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)
	_, _, err := svc.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "18:00", EndTime: "20:00"})
	require.NoError(t, err)

	_, _, err = svc.SaveSettings(ctx, SettingsInput{HourlyRate: "500", OTMultiplier: "3"})
	require.NoError(t, err)

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, records[0].Earnings)
}

func TestTrackerService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)
	inputs := []RecordInput{
		{Date: "2025-10-19", StartTime: "18:00", EndTime: "19:00"},
		{Date: "2026-10-02", StartTime: "18:00", EndTime: "20:00"},
		{Date: "2026-10-19", StartTime: "18:00", EndTime: "22:00"},
	}
	for _, in := range inputs {
		_, _, err := svc.AddRecord(ctx, in)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2026-10-19"), summary.Day)
	assert.Equal(t, domain.Totals{Hours: 4, Earnings: 600, Count: 1}, summary.Daily)
	assert.Equal(t, domain.Totals{Hours: 6, Earnings: 900, Count: 2}, summary.Monthly)
	assert.Equal(t, domain.Totals{Hours: 6, Earnings: 900, Count: 2}, summary.Yearly)

	day := domain.MustParseDate("2026-10-02")
	summary, err = svc.Summary(ctx, &day)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Hours: 2, Earnings: 300, Count: 1}, summary.Daily)

	yearly, err := svc.SummaryWindow(ctx, domain.WindowYear, nil)
	require.NoError(t, err)
	assert.Equal(t, summary.Yearly, yearly)
}

func TestTrackerService_BackendFailure(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t)
	require.NoError(t, kv.Close())

	_, err := svc.ListRecords(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))

	_, _, err = svc.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "18:00", EndTime: "20:00"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestTrackerService_Today(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, domain.MustParseDate("2026-10-19"), svc.Today())
}

func TestTrackerService_LoadState(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	setRate(t, svc)
	_, _, err := svc.AddRecord(ctx, RecordInput{Date: "2026-10-19", StartTime: "18:00", EndTime: "20:00"})
	require.NoError(t, err)

	state, err := svc.LoadState(ctx)

	require.NoError(t, err)
	assert.Len(t, state.Records, 1)
	assert.Equal(t, domain.Settings{HourlyRate: 100, OTMultiplier: 1.5}, state.Settings)
}
