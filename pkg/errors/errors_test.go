// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/bmtidy/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "input_not_found_error",
			code:    errors.ErrInputNotFound,
			message: "bookmark file not found",
			wantStr: "[INPUT_NOT_FOUND] bookmark file not found",
		},
		{
			name:    "invalid_args_error",
			code:    errors.ErrInvalidArgs,
			message: "unknown merge scope",
			wantStr: "[INVALID_ARGS] unknown merge scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidArgs,
			format:  "invalid scope: %s",
			args:    []interface{}{"everywhere"},
			wantMsg: "invalid scope: everywhere",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrOutputWrite,
			format:  "cannot write %s (%d bytes)",
			args:    []interface{}{"out.html", 2048},
			wantMsg: "cannot write out.html (2048 bytes)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInputNotFound, "not found").
		WithDetail("path", "/test/bookmarks.html").
		WithDetail("mode", "dedupe")

	if err.Details["path"] != "/test/bookmarks.html" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/bookmarks.html")
	}

	if err.Details["mode"] != "dedupe" {
		t.Errorf("WithDetail() mode = %v, want %v", err.Details["mode"], "dedupe")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"path":  "/test/bookmarks.html",
		"links": 120,
		"depth": 4,
	}

	err := errors.New(errors.ErrMalformedInput, "cannot parse file").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInputNotFound, "error 1")
	err2 := errors.New(errors.ErrInputNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with TidyError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInputNotFound, "not found"),
			code:     errors.ErrInputNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInputNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrInputRead, "denied"),
			code:     errors.ErrInputRead,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInputNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInputNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "tidy_error",
			err:      errors.New(errors.ErrMalformedInput, "bad markup"),
			expected: errors.ErrMalformedInput,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	// Create a chain of errors
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrInputRead, "cannot read file")
	cmdErr := errors.Wrap(readErr, errors.ErrInvalidArgs, "dedupe failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(cmdErr, errors.ErrInvalidArgs) {
			t.Error("Top level should have ErrInvalidArgs code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var tidyErr *errors.TidyError
		if stderrors.As(cmdErr.Unwrap(), &tidyErr) {
			if !errors.IsErrorCode(tidyErr, errors.ErrInputRead) {
				t.Error("Middle error should have ErrInputRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(cmdErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
