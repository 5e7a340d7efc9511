package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrType reports a typed access whose requested kind does not
	// match the stored value and no configured fallback matches
	// either.
	ErrType = errors.New("type mismatch")

	// ErrBounds reports an array index outside the array.
	ErrBounds = errors.New("index out of bounds")

	// ErrNotFound reports an operation on a handle with no bound
	// slot.
	ErrNotFound = errors.New("not found")
)

func typeErr(want, have Type) error {
	return fmt.Errorf("%w: have %s, want %s", ErrType, have, want)
}

func boundsErr(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrBounds, i, n)
}

func unboundErr() error {
	return fmt.Errorf("%w: unbound field", ErrNotFound)
}
