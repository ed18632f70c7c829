package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStudent is returned when selecting a student not on the roster
	ErrUnknownStudent = errors.New("student is not on the roster")
	// ErrEmptyRoster is returned for a roster with no students
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrDuplicateStudent is returned when a roster lists a student twice
	ErrDuplicateStudent = errors.New("student listed more than once")
	// ErrBlankStudent is returned for a roster entry with no visible text
	ErrBlankStudent = errors.New("student name is blank")
	// ErrNegativeLength is returned for a negative name length limit
	ErrNegativeLength = errors.New("length limit must not be negative")
	// ErrScreenClosed is returned by operations on a closed screen
	ErrScreenClosed = errors.New("screen is closed")
)

// ValidationError reports a rejected input or setting
type ValidationError struct {
	Field string // Which input was rejected (e.g., "student", "roster")
	Value string // The offending value, for display
	Err   error  // Underlying sentinel
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
