package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("otMultiplier below 1")
	err := NewValidationError("settings rejected", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "settings rejected", err.Message)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("record", "7")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "record not found: 7", err.Message)
	assert.Equal(t, "NOT_FOUND", err.Code)

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "record", resource)

	identifier, ok := err.GetContext("identifier")
	require.True(t, ok)
	assert.Equal(t, "7", identifier)
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("set otRecords", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "database operation failed: set otRecords", err.Message)
	assert.Equal(t, "DATABASE_ERROR", err.Code)
	assert.ErrorIs(t, err, cause)

	operation, ok := err.GetContext("operation")
	require.True(t, ok)
	assert.Equal(t, "set otRecords", operation)
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("index", "abc", "must be a number")

	assert.Equal(t, ErrorTypeInvalidInput, err.Type)
	assert.Equal(t, "invalid input for index: must be a number", err.Message)
	assert.Equal(t, "INVALID_INPUT", err.Code)

	value, ok := err.GetContext("value")
	require.True(t, ok)
	assert.Equal(t, "abc", value)
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("load records", "5s")

	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.Equal(t, "operation timed out: load records", err.Message)
	assert.Equal(t, "TIMEOUT", err.Code)
}

func TestNewRecordNotFoundError(t *testing.T) {
	err := NewRecordNotFoundError(4)

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "no OT record at position 4", err.Message)
	assert.Equal(t, CodeRecordNotFound, err.Code)
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}))

	position, ok := RecordPosition(fmt.Errorf("delete: %w", err))
	require.True(t, ok)
	assert.Equal(t, 4, position)

	_, ok = RecordPosition(NewNotFoundError("record", "4"))
	assert.False(t, ok)
	_, ok = RecordPosition(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewEncodeError(t *testing.T) {
	cause := errors.New("unsupported value: NaN")
	err := NewEncodeError("otRecords", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, CodeEncodeFailed, err.Code)
	assert.Equal(t, "database: could not encode otRecords (caused by: unsupported value: NaN)", err.Error())
	assert.ErrorIs(t, err, cause)

	key, ok := err.GetContext("key")
	require.True(t, ok)
	assert.Equal(t, "otRecords", key)
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Type: ErrorTypeNotFound, Message: "gone"}
	assert.Equal(t, "not_found: gone", plain.Error())

	wrapped := &AppError{Type: ErrorTypeDatabase, Message: "failed", Cause: errors.New("boom")}
	assert.Equal(t, "database: failed (caused by: boom)", wrapped.Error())
}

func TestAppError_Is(t *testing.T) {
	err := NewNotFoundError("record", "3")
	wrapped := fmt.Errorf("delete: %w", err)

	assert.True(t, errors.Is(wrapped, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}))
	assert.False(t, errors.Is(wrapped, &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}))
}

func TestAsAppError(t *testing.T) {
	appErr := NewValidationError("bad", nil)

	result, ok := AsAppError(fmt.Errorf("context: %w", appErr))
	assert.True(t, ok)
	assert.Same(t, appErr, result)

	result, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, result)

	assert.False(t, IsAppError(nil))
}

func TestIsErrorType(t *testing.T) {
	err := NewValidationError("bad", nil)

	assert.True(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeValidation))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("hourly rate must be set", nil), "hourly rate must be set"},
		{"not found", NewNotFoundError("record", "4"), "record not found: 4"},
		{"invalid input", NewInvalidInputError("date", "x", "bad"), "invalid input for date: bad"},
		{"database", NewDatabaseError("get", errors.New("x")), "Could not read or write saved overtime data. Please try again."},
		{"record not found", NewRecordNotFoundError(9), "no OT record at position 9"},
		{"timeout", NewTimeoutError("get", "1s"), "The overtime database stayed busy for too long. Please try again."},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("record", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("x", nil)))
	assert.False(t, ShouldLogError(NewInvalidInputError("f", 1, "r")))
	assert.True(t, ShouldLogError(NewDatabaseError("op", nil)))
	assert.True(t, ShouldLogError(errors.New("plain")))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "timeout", ErrorTypeTimeout.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}
