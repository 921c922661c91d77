package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly    = errors.New("store is in read-only mode")
	ErrCorrupt     = errors.New("store data is corrupted")
	ErrOutOfRange  = errors.New("note position out of range")
	ErrNotLoaded   = errors.New("store has not been loaded")
	ErrClosed      = errors.New("store is closed")
	ErrIDExhausted = errors.New("no note id left after the last note")
)

// OutOfRangeError reports a positional delete outside [1, Len].
type OutOfRangeError struct {
	Position int
	Len      int
}

func (e *OutOfRangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("cannot delete note %d: store is empty", e.Position)
	}
	return fmt.Sprintf("cannot delete note %d: position must be between 1 and %d", e.Position, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
