package core

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailed is returned when the backing store could not be
	// acquired, grown or shrunk. The container is left unchanged.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrInvalidArgument is returned for nonsensical parameters such as a zero capacity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfBounds is returned when an index is not below the relevant bound.
	// The concrete error is an *IndexError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrUnsupported is returned when an operation is forbidden in the
	// container's allocation mode (e.g. resizing a fixed-capacity vector).
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotReady is returned by element operations on a container that has
	// not been initialized (or was freed).
	ErrNotReady = fmt.Errorf("%w: container not initialized", ErrUnsupported)

	// ErrFull is returned when a fixed-capacity container has no free slot.
	ErrFull = errors.New("container is full")

	// ErrEmpty is returned when an operation requires at least one element.
	ErrEmpty = errors.New("container is empty")
)

// IndexError reports an index that is out of range for an operation.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds [0, %d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }
