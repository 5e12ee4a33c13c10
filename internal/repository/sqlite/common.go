package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"ot-tracker/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// Deadline overruns become timeout errors.
func HandleDatabaseError(ctx context.Context, operation string, timeout time.Duration, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, timeout)
	}
	return errors.NewDatabaseError(operation, err)
}

// Execute runs a statement that returns no rows
func Execute(ctx context.Context, db *sql.DB, timeout time.Duration, operation, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return HandleDatabaseError(ctx, operation, timeout, err)
	}
	return nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, db *sql.DB, timeout time.Duration, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleDatabaseError(ctx, "scan "+entityType, timeout, err)
	}
	return result, nil
}
