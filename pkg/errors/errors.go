package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNoInput      ErrorCode = "NO_INPUT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Plan errors (structural, independent of the filesystem)
	ErrUnequalLines        ErrorCode = "UNEQUAL_LINES"
	ErrNoReplacementsFound ErrorCode = "NO_REPLACEMENTS_FOUND"
	ErrDuplicateOutput     ErrorCode = "DUPLICATE_OUTPUT"

	// Validation errors (environmental)
	ErrDuplicateInputFiles   ErrorCode = "DUPLICATE_INPUT_FILES"
	ErrNonexistentInputFiles ErrorCode = "NONEXISTENT_INPUT_FILES"
	ErrOverwriteConflict     ErrorCode = "OVERWRITE_CONFLICT"

	// Collaborator and execution errors
	ErrEditorFailed      ErrorCode = "EDITOR_FAILED"
	ErrRenameIOFailure   ErrorCode = "RENAME_IO_FAILURE"
	ErrPromptFailed      ErrorCode = "PROMPT_FAILED"
	ErrUndoNotFound      ErrorCode = "UNDO_NOT_FOUND"
	ErrUndoTargetMissing ErrorCode = "UNDO_TARGET_MISSING"
	ErrUndoWrite         ErrorCode = "UNDO_WRITE"
)

// DetailPaths is the detail key holding the offending paths of an error.
const DetailPaths = "paths"

// RenamerError represents a structured error with code and details
type RenamerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenamerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenamerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenamerError) Is(target error) bool {
	var targetErr *RenamerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenamerError with the given code and message
func New(code ErrorCode, message string) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenamerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenamerError
func Wrap(err error, code ErrorCode, message string) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithPaths builds an error whose message enumerates every offending path,
// so a single diagnostic line is enough to fix all of them at once.
func WithPaths(code ErrorCode, message string, paths []string) *RenamerError {
	return New(code, fmt.Sprintf("%s: %s", message, strings.Join(paths, ", "))).
		WithDetail(DetailPaths, paths)
}

// WithDetail adds a detail to the error
func (e *RenamerError) WithDetail(key string, value interface{}) *RenamerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenamerError) WithDetails(details map[string]interface{}) *RenamerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenamerError
func GetErrorCode(err error) ErrorCode {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenamerError
func GetErrorDetails(err error) map[string]interface{} {
	var renamerErr *RenamerError
	if errors.As(err, &renamerErr) {
		return renamerErr.Details
	}
	return nil
}

// GetPaths returns the offending paths recorded on an error, if any.
func GetPaths(err error) []string {
	details := GetErrorDetails(err)
	if details == nil {
		return nil
	}
	paths, _ := details[DetailPaths].([]string)
	return paths
}
