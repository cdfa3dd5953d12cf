package vector

import (
	"fmt"
	"iter"

	"github.com/hupe1980/containers/core"
	"github.com/hupe1980/containers/internal/conv"
	"github.com/hupe1980/containers/mem"
)

// Compile time check to ensure Dynamic satisfies the Vector interface.
var _ Vector[int] = (*Dynamic[int])(nil)

// Dynamic is a heap-backed vector that grows by a fixed increment when full.
//
// The zero value is an uninitialized vector with the default growth and the
// plain heap allocator; call Init before use.
type Dynamic[T any] struct {
	data   []T // len(data) is the capacity
	size   int
	growth int
	alloc  *mem.Allocator
	ready  bool
}

// NewDynamic creates a vector with room for capacity elements.
func NewDynamic[T any](capacity int, opts ...Option) (*Dynamic[T], error) {
	o := options{growth: DefaultGrowth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.growth <= 0 {
		return nil, fmt.Errorf("vector: growth %d: %w", o.growth, core.ErrInvalidArgument)
	}

	v := &Dynamic[T]{
		growth: o.growth,
		alloc:  o.alloc,
	}
	if err := v.Init(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Init allocates a fresh buffer of capacity slots and empties the vector.
// A previously held buffer is released first.
//
// On error the vector is left uninitialized with no buffer.
func (v *Dynamic[T]) Init(capacity int) error {
	v.Free()
	if capacity <= 0 {
		return fmt.Errorf("vector: init capacity %d: %w", capacity, core.ErrInvalidArgument)
	}

	data, err := mem.Alloc[T](v.alloc, capacity)
	if err != nil {
		return fmt.Errorf("vector: init: %w", err)
	}

	v.data = data
	v.ready = true
	return nil
}

// Free releases the buffer and resets the vector to the uninitialized state.
// Calling Free more than once is safe.
func (v *Dynamic[T]) Free() {
	mem.Free(v.alloc, v.data)
	v.data = nil
	v.size = 0
	v.ready = false
}

// Len returns the number of live elements.
func (v *Dynamic[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Dynamic[T]) Cap() int { return len(v.data) }

// Ready reports whether the vector is initialized.
func (v *Dynamic[T]) Ready() bool { return v.ready }

// Growth returns the growth increment.
func (v *Dynamic[T]) Growth() int {
	if v.growth <= 0 {
		return DefaultGrowth
	}
	return v.growth
}

// Data returns the live elements.
func (v *Dynamic[T]) Data() []T { return v.data[:v.size:v.size] }

// At returns the element at index i.
func (v *Dynamic[T]) At(i int) (T, error) { return at(v.data[:v.size], i) }

// Set overwrites the element at index i.
func (v *Dynamic[T]) Set(i int, e T) error { return set(v.data[:v.size], i, e) }

// All iterates over the live elements.
func (v *Dynamic[T]) All() iter.Seq2[int, T] { return all(v.data[:v.size]) }

// Resize reallocates the buffer to capacity slots.
//
// Resizing to the current capacity reports core.NoChange. Shrinking below
// Len() drops the tail elements and reports core.Discarded. On allocation
// failure the vector is unchanged.
func (v *Dynamic[T]) Resize(capacity int) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: resize: %w", core.ErrNotReady)
	}
	if capacity <= 0 {
		return core.Done, fmt.Errorf("vector: resize to %d: %w", capacity, core.ErrInvalidArgument)
	}
	if capacity == len(v.data) {
		return core.NoChange, nil
	}

	data, err := mem.Realloc(v.alloc, v.data, capacity)
	if err != nil {
		return core.Done, fmt.Errorf("vector: resize: %w", err)
	}
	v.data = data

	if v.size > capacity {
		v.size = capacity
		return core.Discarded, nil
	}
	return core.Done, nil
}

// PushBack appends e, growing the buffer by the growth increment when full.
func (v *Dynamic[T]) PushBack(e T) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: push_back: %w", core.ErrNotReady)
	}
	if err := v.ensureSlot(); err != nil {
		return core.Done, fmt.Errorf("vector: push_back: %w", err)
	}

	v.data[v.size] = e
	v.size++
	return core.Done, nil
}

// PushAt writes e at index after moving the element found there to the end.
//
// index is bounded by Cap(), not Len(). With index > Len() the slot at Len()
// receives whatever stale value index held and e lands past the live range.
// Reports core.Reordered when a live element was relocated.
func (v *Dynamic[T]) PushAt(e T, index int) (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: push_at: %w", core.ErrNotReady)
	}
	if index < 0 || index >= len(v.data) {
		return core.Done, &core.IndexError{Op: "vector: push_at", Index: index, Bound: len(v.data)}
	}
	if err := v.ensureSlot(); err != nil {
		return core.Done, fmt.Errorf("vector: push_at: %w", err)
	}

	out := relocate(v.data, v.size, e, index)
	v.size++
	return out, nil
}

// PopBack drops the last element. The vacated slot is not cleared.
func (v *Dynamic[T]) PopBack() (core.Outcome, error) {
	if !v.ready {
		return core.Done, fmt.Errorf("vector: pop_back: %w", core.ErrNotReady)
	}
	if v.size == 0 {
		return core.WasEmpty, nil
	}
	v.size--
	return core.Done, nil
}

// PopAt removes the element at index by moving the last element into its slot.
// Reports core.Reordered when an element was moved.
func (v *Dynamic[T]) PopAt(index int) (core.Outcome, error) {
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
	v.size, out = swapRemove(v.data, v.size, index)
	return out, nil
}

func (v *Dynamic[T]) ensureSlot() error {
	if v.size < len(v.data) {
		return nil
	}
	capacity, err := conv.AddInt(len(v.data), v.Growth())
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrAllocationFailed, err)
	}
	_, err = v.Resize(capacity)
	return err
}

func (v *Dynamic[T]) raw() []T { return v.data }

func (v *Dynamic[T]) setLen(n int) { v.size = n }
