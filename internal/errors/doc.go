// Package errors provides error handling conventions for the skillery CLI.
//
// This package defines sentinel errors for the build and query failure
// taxonomy, an ExitError type for CLI exit code handling, and exit code
// constants following standard Unix conventions. It also re-exports the
// construction and inspection helpers from cockroachdb/errors so callers
// need only one errors import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrDuplicateSkill) {
//	    // abort the build
//	}
//
// The taxonomy:
//
//   - [ErrRecordMalformed]: header unparsable; record skipped, build continues
//   - [ErrDuplicateSkill]: two records share an id; hard build failure
//   - [ErrSourceUnreadable]: source directory missing/unreadable; fatal
//   - [ErrInvalidPageSize], [ErrInvalidPage]: rejected query parameters
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [Unwrap] and [As]:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
