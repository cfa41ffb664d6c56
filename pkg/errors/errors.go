package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string code.
type ErrorCode string

const (
	// General errors
	ErrUnknown     ErrorCode = "UNKNOWN"
	ErrInternal    ErrorCode = "INTERNAL"
	ErrInvalidArgs ErrorCode = "INVALID_ARGS"

	// Input errors
	ErrInputNotFound  ErrorCode = "INPUT_NOT_FOUND"
	ErrInputRead      ErrorCode = "INPUT_UNREADABLE"
	ErrMalformedInput ErrorCode = "MALFORMED_INPUT"

	// Output errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE_FAILED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD_FAILED"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// TidyError is a structured error carrying a code, optional details,
// and an optional wrapped cause.
type TidyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TidyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TidyError) Unwrap() error {
	return e.Wrapped
}

// Is matches two TidyErrors by code
func (e *TidyError) Is(target error) bool {
	var targetErr *TidyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TidyError with the given code and message
func New(code ErrorCode, message string) *TidyError {
	return &TidyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TidyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TidyError {
	return &TidyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TidyError. Returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *TidyError {
	if err == nil {
		return nil
	}
	return &TidyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TidyError {
	if err == nil {
		return nil
	}
	return &TidyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TidyError) WithDetail(key string, value interface{}) *TidyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TidyError) WithDetails(details map[string]interface{}) *TidyError {
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
	var tidyErr *TidyError
	if errors.As(err, &tidyErr) {
		return tidyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a TidyError
func GetErrorCode(err error) ErrorCode {
	var tidyErr *TidyError
	if errors.As(err, &tidyErr) {
		return tidyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if the
// error is not a TidyError
func GetErrorDetails(err error) map[string]interface{} {
	var tidyErr *TidyError
	if errors.As(err, &tidyErr) {
		return tidyErr.Details
	}
	return nil
}
