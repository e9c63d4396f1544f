package dirmeta

import (
	"errors"
	"strings"
)

// Sentinel errors for structural failures. These enable callers to
// distinguish error types using errors.Is().
//
// Example usage:
//
//	_, _, err := dirmeta.FilesFolders(path)
//	if errors.Is(err, dirmeta.ErrNotADirectory) {
//	    // Handle a file being passed where a directory was required
//	}
var (
	// ErrNotFound indicates the target path does not exist when the
	// operation requires it to.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates the target exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrTypeMismatch indicates a Path was compared against an unsupported
	// operand type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidConfig indicates the configuration file or environment
	// could not be loaded.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, ErrTypeMismatch):
		return ExitTypeMismatch
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	// Cobra reports usage problems as plain errors; classify by message.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
