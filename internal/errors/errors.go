// Package errors defines the sentinel errors shared across blueprint.
//
// Callers categorize failures with errors.Is. This package must not import
// any other internal package.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates user input that cannot be saved, e.g. a session
	// with nothing completed. No state is changed.
	ErrValidation = errors.New("validation failed")

	// ErrImport indicates a backup file that does not have the export shape.
	// No state is changed.
	ErrImport = errors.New("invalid backup file")

	// ErrStorage indicates that a persistence write failed after all retries.
	ErrStorage = errors.New("storage write failed")

	// ErrUnknownExercise indicates an id that is not in either catalog.
	ErrUnknownExercise = errors.New("unknown exercise")

	// ErrConfirmationRequired indicates a destructive draft edit that was not confirmed.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrInvalidConfig indicates a configuration value outside its allowed range.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrap adds context to err. It returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to err. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
