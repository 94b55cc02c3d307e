package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInputUnavailable is matched by every failure to read a pattern source.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrMalformedInput means the pattern text does not describe a rectangular grid.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidSpeed is returned for anything other than the literals "1".."5".
	ErrInvalidSpeed = errors.New("invalid speed")
	// ErrEmptyGrid is returned when an engine is built from a zero-area grid.
	ErrEmptyGrid = errors.New("grid has zero area")
)

// InputUnavailableError wraps the underlying read failure for a pattern source
type InputUnavailableError struct {
	Source string
	Err    error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInputUnavailable, e.Source, e.Err)
}

func (e *InputUnavailableError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInputUnavailable) match without losing the OS error.
func (e *InputUnavailableError) Is(target error) bool {
	return target == ErrInputUnavailable
}
