package store

import (
	"context"
	"encoding/json"
	"strings"

	"ot-tracker/internal/domain"
	"ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
)

// RecordStore keeps the full record list, newest first, under RecordsKey
type RecordStore struct {
	kv     KeyValueStore
	logger *logging.Logger
}

// NewRecordStore creates a record store on top of kv
func NewRecordStore(kv KeyValueStore, logger *logging.Logger) *RecordStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &RecordStore{kv: kv, logger: logger.WithComponent(logging.ComponentStore)}
}

// LoadAll returns every stored record. A missing or unreadable blob yields an
// empty list and entries that fail OTRecord.IsValid are dropped; only backend
// failures are returned as errors.
func (s *RecordStore) LoadAll(ctx context.Context) ([]domain.OTRecord, error) {
	blob, found, err := s.kv.Get(ctx, RecordsKey)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(blob) == "" {
		return []domain.OTRecord{}, nil
	}

	var records []domain.OTRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		s.logger.WarnContext(ctx, "stored records are malformed, starting from an empty list",
			logging.FieldKey, RecordsKey, logging.FieldError, err.Error())
		return []domain.OTRecord{}, nil
	}
	valid := make([]domain.OTRecord, 0, len(records))
	for _, r := range records {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	if dropped := len(records) - len(valid); dropped > 0 {
		s.logger.WarnContext(ctx, "dropped invalid stored records",
			logging.FieldKey, RecordsKey, logging.FieldCount, dropped)
	}
	return valid, nil
}

// SaveAll replaces the stored list
func (s *RecordStore) SaveAll(ctx context.Context, records []domain.OTRecord) error {
	if records == nil {
		records = []domain.OTRecord{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return errors.NewEncodeError(RecordsKey, err)
	}
	err = s.kv.Set(ctx, RecordsKey, string(blob))
	s.logger.Operation(ctx, "records.save", err, logging.FieldCount, len(records))
	return err
}

// Add inserts record at the head of the list and persists the result
func (s *RecordStore) Add(ctx context.Context, record domain.OTRecord) ([]domain.OTRecord, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = domain.PrependRecord(records, record)
	if err := s.SaveAll(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the record at the zero-based index. An out of range index
// changes nothing, writes nothing and reports removed=false.
func (s *RecordStore) Delete(ctx context.Context, index int) (records []domain.OTRecord, removed bool, err error) {
	records, err = s.LoadAll(ctx)
	if err != nil {
		return nil, false, err
	}
	out, ok := domain.RemoveRecordAt(records, index)
	if !ok {
		s.logger.DebugContext(ctx, "delete ignored, index out of range",
			logging.FieldIndex, index, logging.FieldCount, len(records))
		return records, false, nil
	}
	if err := s.SaveAll(ctx, out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}
