package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Entry is one row of the kv_entries table
type Entry struct {
	Key       string
	Value     string
	UpdatedAt string
}

// ScanEntry scans a single key-value entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	if err := scanner.Scan(&entry.Key, &entry.Value, &entry.UpdatedAt); err != nil {
		return nil, err
	}
	return entry, nil
}
