package intern

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when the next position does not fit the handle type.
	ErrOverflow = errors.New("interner handle space exhausted")

	// ErrHandleWidth is returned by New when the handle type is wider than the
	// platform int and therefore cannot address every handle it could hold.
	ErrHandleWidth = errors.New("handle type wider than native index")

	// ErrNoHasher is returned by New in builds without a default hasher
	// strategy when WithHasher was not supplied.
	ErrNoHasher = errors.New("no hasher strategy configured")
)

// OverflowError reports the position that could not be issued as a handle.
//
// errors.Is(err, ErrOverflow) reports true for it.
type OverflowError struct {
	Position int
	Width    int

	// Max is the largest position the handle type can represent.
	Max int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: position %d exceeds %d-bit handle maximum %d", ErrOverflow, e.Position, e.Width, e.Max)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// HandleWidthError indicates a handle type that is too wide for this platform.
type HandleWidthError struct {
	Width  int
	Native int
}

func (e *HandleWidthError) Error() string {
	return fmt.Sprintf("%s: %d-bit handle, %d-bit int", ErrHandleWidth, e.Width, e.Native)
}

func (e *HandleWidthError) Unwrap() error { return ErrHandleWidth }
