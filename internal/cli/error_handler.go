package cli

import (
	stderrors "errors"
	"fmt"

	"ot-tracker/internal/errors"
	"ot-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.Message(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", eh.Message(err))
}

// Report formats a command failure for the terminal. An empty operation
// means no subcommand ran, so the message stands alone.
func (eh *ErrorHandler) Report(operation string, err error) error {
	if operation == "" {
		return eh.HandleSimple(err)
	}
	return eh.Handle(operation, err)
}

// Hint suggests what to do next about err, or returns "" when there is
// nothing useful to add.
func (eh *ErrorHandler) Hint(err error) string {
	if position, ok := errors.RecordPosition(err); ok {
		return fmt.Sprintf("Record %d is gone; run `ot list` to see the current numbering.", position)
	}
	switch {
	case eh.GetErrorCode(err) == errors.CodeEncodeFailed:
		return ""
	case eh.IsNotFoundError(err):
		return "Run `ot list` to see the record numbers."
	case eh.IsDatabaseError(err):
		return "Check that the data directory is writable, or pick another with --db-dir or OT_DB_DIR."
	case eh.IsValidationError(err):
		return "Run the command with --help to see the expected formats."
	default:
		return ""
	}
}

// Message returns the text shown to the user for err
func (eh *ErrorHandler) Message(err error) string {
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}
	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// ShouldLog reports whether err is a system failure worth logging rather
// than a user mistake
func (eh *ErrorHandler) ShouldLog(err error) bool {
	return !eh.IsValidationError(err) && errors.ShouldLogError(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if validation.IsValidationError(err) {
		return errors.CodeValidationFailed
	}
	return errors.GetErrorCode(err)
}
