package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionRange is returned when a word index outside the current
	// sentence is selected. Callers that only offer enumerated indices never see it.
	ErrSelectionRange = errors.New("word index out of range")

	// ErrSuperseded is returned by Lookup when a newer lookup started first.
	ErrSuperseded = errors.New("lookup superseded by a newer lookup")
)

// RangeError describes a rejected selection.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("select word %d: sentence has %d words", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrSelectionRange }
