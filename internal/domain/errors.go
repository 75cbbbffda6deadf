package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoPayingGuests   = errors.New("no paying guests")
	ErrEmptyCombination = errors.New("no packages generated")
	ErrClipNotFound     = errors.New("clipboard entry not found")
)

// MissingEntriesError names the sides with no valid entries after reading.
type MissingEntriesError struct{ Sides []Side }

func (e *MissingEntriesError) Error() string {
	return "missing valid entries for side(s) " + sidesString(e.Sides)
}

// EmptyInputError is returned by the combiner when it is handed an empty side.
type EmptyInputError struct{ Sides []Side }

func (e *EmptyInputError) Error() string {
	return "empty input for side(s) " + sidesString(e.Sides)
}

// ClipboardWriteError wraps a failed clipboard write. It is never fatal.
type ClipboardWriteError struct{ Err error }

func (e *ClipboardWriteError) Error() string { return fmt.Sprintf("clipboard write: %v", e.Err) }
func (e *ClipboardWriteError) Unwrap() error { return e.Err }
