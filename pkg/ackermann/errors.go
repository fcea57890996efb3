package ackermann

import (
	"errors"
	"fmt"

	"github.com/rmohr/ufelim/pkg/term"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrMalformedInput  = errors.New("malformed input")
)

// UnsupportedTypeError is returned when no equality operator exists for a
// pair of argument sorts.
type UnsupportedTypeError struct {
	Left, Right term.Sort
	// Application is the application whose arguments were compared, if any.
	Application term.Term
}

func (e *UnsupportedTypeError) Error() string {
	if e.Application != nil {
		return fmt.Sprintf("%v: no equality between %s and %s in %s", ErrUnsupportedType, e.Left, e.Right, e.Application)
	}
	return fmt.Sprintf("%v: no equality between %s and %s", ErrUnsupportedType, e.Left, e.Right)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// MalformedInputError signals an input that breaks the term model's own
// invariants, such as two applications of one declaration with different
// arities.
type MalformedInputError struct {
	Reason string
	Terms  []term.Term
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
	for _, t := range e.Terms {
		msg += fmt.Sprintf("\n\t%s", t)
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}
