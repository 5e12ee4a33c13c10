package migrations

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ot-tracker/internal/logging"
)

// recordsKey is the kv_entries key holding the overtime record list.
const recordsKey = "otRecords"

func init() {
	RegisterGoMigration(2, Up_000002_assign_record_ids)
}

// Up_000002_assign_record_ids gives every stored record without an "id" a
// fresh UUID. Unknown fields are kept. A blob that is not a JSON array is
// left untouched; the record store already treats it as an empty list.
func Up_000002_assign_record_ids(tx *sql.Tx) error {
	return rewriteRecords(tx, func(record map[string]any) bool {
		if id, ok := record["id"].(string); ok && id != "" {
			return false
		}
		record["id"] = uuid.New().String()
		return true
	})
}

func rewriteRecords(tx *sql.Tx, change func(map[string]any) bool) error {
	var blob string
	err := tx.QueryRow("SELECT value FROM kv_entries WHERE key = ?", recordsKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		logging.Debugf("skipping record id migration, stored records are not a JSON array: %v", err)
		return nil
	}

	changed := 0
	for _, record := range records {
		if record != nil && change(record) {
			changed++
		}
	}
	if changed == 0 {
		return nil
	}

	out, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if _, err := tx.Exec("UPDATE kv_entries SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = ?", string(out), recordsKey); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	logging.Debugf("record id migration updated %d of %d records", changed, len(records))
	return nil
}
