package vector

import (
	"fmt"
	"iter"

	"github.com/hupe1980/containers/core"
)

// Compile time check to ensure Static satisfies the Vector interface.
var _ Vector[int] = (*Static[int])(nil)

// Static is a fixed-capacity vector over caller-owned storage.
//
// It never allocates: the capacity is len(storage) and cannot change. The
// storage slice is borrowed, not copied, and stays owned by the caller.
type Static[T any] struct {
	storage  []T
	size     int
	capacity int
	ready    bool
}

// NewStatic creates a vector backed by storage.
func NewStatic[T any](storage []T) (*Static[T], error) {
	v := &Static[T]{storage: storage}
	if err := v.Init(); err != nil {
		return nil, err
	}
	return v, nil
}

// Init empties the vector and makes the whole storage available again.
func (v *Static[T]) Init() error {
	v.size = 0
	if len(v.storage) == 0 {
		v.capacity = 0
		v.ready = false
		return fmt.Errorf("vector: init static storage: %w", core.ErrInvalidArgument)
	}
	v.capacity = len(v.storage)
	v.ready = true
	return nil
}

// Free resets the counters. The storage is not touched.
func (v *Static[T]) Free() {
	v.size = 0
	v.capacity = 0
	v.ready = false
}

func (v *Static[T]) Len() int { return v.size }

func (v *Static[T]) Cap() int { return v.capacity }

func (v *Static[T]) Ready() bool { return v.ready }

func (v *Static[T]) Data() []T { return v.storage[:v.size:v.size] }

func (v *Static[T]) At(i int) (T, error) { return at(v.storage[:v.size], i) }

func (v *Static[T]) Set(i int, e T) error { return set(v.storage[:v.size], i, e) }

func (v *Static[T]) All() iter.Seq2[int, T] { return all(v.storage[:v.size]) }

// Resize always fails with core.ErrUnsupported.
func (v *Static[T]) Resize(int) (core.Outcome, error) {
	return core.Done, fmt.Errorf("vector: resize static vector: %w", core.ErrUnsupported)
}

// PushBack appends e or fails with core.ErrFull.
func (v *Static[T]) PushBack(e T) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: push_back: %w", core.ErrNotReady)
	}
	if v.size >= v.capacity {
		return core.Done, fmt.Errorf("vector: push_back: %w", core.ErrFull)
	}

	v.storage[v.size] = e
	v.size++
	return core.Done, nil
}

// PushAt writes e at index after moving the element found there to the end.
// Bounds and results are those of Dynamic.PushAt, except that a full vector
// fails with core.ErrFull.
func (v *Static[T]) PushAt(e T, index int) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: push_at: %w", core.ErrNotReady)
	}
	if index < 0 || index >= v.capacity {
		return core.Done, &core.IndexError{Op: "vector: push_at", Index: index, Bound: v.capacity}
	}
	if v.size >= v.capacity {
		return core.Done, fmt.Errorf("vector: push_at: %w", core.ErrFull)
	}

	out := relocate(v.storage, v.size, e, index)
	v.size++
	return out, nil
}

func (v *Static[T]) PopBack() (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: pop_back: %w", core.ErrNotReady)
	}
	if v.size == 0 {
		return core.WasEmpty, nil
	}
	v.size--
	return core.Done, nil
}

func (v *Static[T]) PopAt(index int) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: pop_at: %w", core.ErrNotReady)
	}
	if v.size == 0 {
		return core.WasEmpty, nil
	}
	if index < 0 || index >= v.size {
		return core.Done, &core.IndexError{Op: "vector: pop_at", Index: index, Bound: v.size}
	}

	var out core.Outcome
	v.size, out = swapRemove(v.storage, v.size, index)
	return out, nil
}

func (v *Static[T]) raw() []T { return v.storage[:v.capacity] }

func (v *Static[T]) setLen(n int) { v.size = n }
