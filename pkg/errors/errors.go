package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Discovery and aggregation errors
	ErrRegexCompile     ErrorCode = "REGEX_COMPILE"
	ErrIO               ErrorCode = "IO"
	ErrNonUTF8Name      ErrorCode = "NOT_UTF8_NAME"
	ErrAlreadyCollected ErrorCode = "ALREADY_COLLECTED"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// PathMasterError represents a structured error with code and details
type PathMasterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathMasterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathMasterError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PathMasterError carrying the same code
func (e *PathMasterError) Is(target error) bool {
	var targetErr *PathMasterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathMasterError with the given code and message
func New(code ErrorCode, message string) *PathMasterError {
	return &PathMasterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathMasterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathMasterError {
	return &PathMasterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PathMasterError {
	if err == nil {
		return nil
	}
	return &PathMasterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathMasterError {
	if err == nil {
		return nil
	}
	return &PathMasterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathMasterError) WithDetail(key string, value interface{}) *PathMasterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pmErr *PathMasterError
	if errors.As(err, &pmErr) {
		return pmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathMasterError
func GetErrorCode(err error) ErrorCode {
	var pmErr *PathMasterError
	if errors.As(err, &pmErr) {
		return pmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathMasterError
func GetErrorDetails(err error) map[string]interface{} {
	var pmErr *PathMasterError
	if errors.As(err, &pmErr) {
		return pmErr.Details
	}
	return nil
}
