package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch indicates a scan produced an empty match set.
	ErrNoMatch = errors.New("no match for pattern")
	// ErrCancelled indicates the user declined to select an entry.
	ErrCancelled = errors.New("selection cancelled")
	// ErrSelectionOutOfRange indicates a numeric selection above the match count.
	ErrSelectionOutOfRange = errors.New("selection out of range")
	// ErrMalformedRecord indicates a line without a delimiter was used where fields are required.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidField indicates a secret or description that cannot be encoded safely.
	ErrInvalidField = errors.New("invalid field")
)

// SelectionError reports a selection larger than the number of matches.
type SelectionError struct {
	Input string
	Max   int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection %s exceeds %d matches", e.Input, e.Max)
}

func (e *SelectionError) Unwrap() error { return ErrSelectionOutOfRange }

func fieldErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidField, fmt.Sprintf(format, args...))
}
