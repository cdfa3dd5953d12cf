package vector

import (
	"fmt"
	"iter"

	"github.com/hupe1980/containers/core"
)

// Vector is a resizable array of T with swap-based element operations.
//
// Len() <= Cap() holds after every operation. Slots [Len(), Cap()) keep
// whatever they held before; they are never zeroed.
//
// PushAt and PopAt run in O(1) by relocating a single element instead of
// shifting: PushAt moves the displaced element to the tail, PopAt moves the
// last element into the hole. Iteration order is therefore not stable across
// these calls.
//
// The interface is sealed; Dynamic and Static are its implementations.
type Vector[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the number of allocated slots.
	Cap() int
	// Ready reports whether the vector is initialized.
	Ready() bool
	// Data returns the live elements. The slice aliases the vector's buffer
	// and is invalidated by the next operation that reallocates.
	Data() []T
	// At returns the element at index i.
	At(i int) (T, error)
	// Set overwrites the element at index i.
	Set(i int, v T) error
	// All iterates over the live elements in slot order.
	All() iter.Seq2[int, T]

	PushBack(e T) (core.Outcome, error)
	PushAt(e T, index int) (core.Outcome, error)
	PopBack() (core.Outcome, error)
	PopAt(index int) (core.Outcome, error)
	Resize(capacity int) (core.Outcome, error)
	Free()

	raw() []T
	setLen(n int)
}

// Copy makes dst a value copy of src's live elements.
//
// dst is grown with Resize when its capacity is below src.Len(), so copying
// into a smaller Static vector fails with core.ErrUnsupported. dst's slots
// past src.Len() are left as they were.
func Copy[T any](dst, src Vector[T]) (core.Outcome, error) {
	if !src.Ready() || !dst.Ready() {
		return core.Done, fmt.Errorf("vector: copy: %w", core.ErrNotReady)
	}

	n := src.Len()
	if dst.Cap() < n {
		if _, err := dst.Resize(n); err != nil {
			return core.Done, fmt.Errorf("vector: copy: %w", err)
		}
	}

	copy(dst.raw()[:n], src.Data())
	dst.setLen(n)
	return core.Done, nil
}

func all[T any](data []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range data {
			if !yield(i, e) {
				return
			}
		}
	}
}

func at[T any](data []T, i int) (T, error) {
	if i < 0 || i >= len(data) {
		var zero T
		return zero, &core.IndexError{Op: "vector: at", Index: i, Bound: len(data)}
	}
	return data[i], nil
}

func set[T any](data []T, i int, v T) error {
	if i < 0 || i >= len(data) {
		return &core.IndexError{Op: "vector: set", Index: i, Bound: len(data)}
	}
	data[i] = v
	return nil
}

// relocate writes e at index and moves the previous occupant to slot size.
// The caller guarantees size < len(buf) and index < len(buf).
func relocate[T any](buf []T, size int, e T, index int) core.Outcome {
	buf[size] = buf[index]
	buf[index] = e
	if index < size {
		return core.Reordered
	}
	return core.Done
}

// swapRemove overwrites index with the last live element and returns the new size.
func swapRemove[T any](buf []T, size int, index int) (int, core.Outcome) {
	last := size - 1
	if index == last {
		return last, core.Done
	}
	buf[index] = buf[last]
	return last, core.Reordered
}
