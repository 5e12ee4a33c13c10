package memory

import (
	"context"
	stderrors "errors"
	"sync"

	"ot-tracker/internal/errors"
)

var errClosed = stderrors.New("repository is closed")

// Repository is a map-backed key-value store. It is used by tests and by the
// testing environment, where nothing should touch the disk.
type Repository struct {
	mu      sync.RWMutex
	entries map[string]string
	closed  bool
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{entries: make(map[string]string)}
}

// NewWithEntries creates a repository pre-loaded with entries
func NewWithEntries(entries map[string]string) *Repository {
	r := New()
	for k, v := range entries {
		r.entries[k] = v
	}
	return r
}

// Get returns the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx, "get "+key); err != nil {
		return "", false, err
	}
	value, ok := r.entries[key]
	return value, ok, nil
}

// Set stores value under key
func (r *Repository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx, "set "+key); err != nil {
		return err
	}
	r.entries[key] = value
	return nil
}

// Delete removes key
func (r *Repository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx, "delete "+key); err != nil {
		return err
	}
	delete(r.entries, key)
	return nil
}

// Close marks the repository closed; later calls fail like a closed database
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *Repository) check(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewDatabaseError(operation, err)
	}
	if r.closed {
		return errors.NewDatabaseError(operation, errClosed)
	}
	return nil
}
