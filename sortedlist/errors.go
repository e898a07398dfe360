package sortedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a nil value is offered to the list.
	// The list is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned by First and Last on a list with no elements.
	ErrEmpty = errors.New("the list is empty")

	// ErrEndOfSequence is returned by Cursor.Next once every element has been visited.
	ErrEndOfSequence = errors.New("no more elements")

	// ErrConcurrentModification is returned by Cursor.Next when the list was
	// structurally modified after the cursor was created.
	ErrConcurrentModification = errors.New("list modified during iteration")
)

// IndexError reports an index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: Index: %d, Size: %d", ErrIndexOutOfRange, e.Index, e.Size)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Compile-time check that IndexError implements error interface.
var _ error = (*IndexError)(nil)
