package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrRecordMalformed indicates a skill record's metadata header could
	// not be parsed. The record is skipped; the build continues.
	ErrRecordMalformed = errors.New("record malformed")

	// ErrDuplicateSkill indicates two records resolved to the same skill id.
	// This is a hard build failure.
	ErrDuplicateSkill = errors.New("duplicate skill id")

	// ErrSourceUnreadable indicates the source directory is missing or
	// unreadable. This aborts the build.
	ErrSourceUnreadable = errors.New("source directory unreadable")

	// ErrInvalidPageSize indicates a pagination request with perPage <= 0.
	ErrInvalidPageSize = errors.New("page size must be positive")

	// ErrInvalidPage indicates a pagination request with page < 1.
	ErrInvalidPage = errors.New("page number must be >= 1")

	// ErrNotFound indicates the requested skill was not found in the catalog.
	ErrNotFound = errors.New("skill not found")
)

// Re-exported helpers from cockroachdb/errors so callers only import this
// package for error construction and inspection.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
	Mark   = errors.Mark
)

// ExitError wraps an error with an exit code and optional suggestion for
// CLI use. It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Check your skillery config file",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
