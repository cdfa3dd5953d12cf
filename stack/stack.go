package stack

import (
	"fmt"
	"iter"

	"github.com/hupe1980/containers/core"
)

type options[T any] struct {
	empty T
}

// Option configures a Bounded stack.
type Option[T any] func(*options[T])

// WithEmptyValue sets the value returned by Pop and Peek on an empty stack
// and written into vacated slots.
func WithEmptyValue[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.empty = v
	}
}

// Bounded is a LIFO stack with a fixed capacity.
type Bounded[T any] struct {
	elems []T // len(elems) is the capacity
	count int
	empty T
}

// NewBounded creates a stack that holds at most capacity elements.
func NewBounded[T any](capacity int, opts ...Option[T]) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("stack: capacity %d: %w", capacity, core.ErrInvalidArgument)
	}

	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	s := &Bounded[T]{
		elems: make([]T, capacity),
		empty: o.empty,
	}
	s.reset(s.elems)
	return s, nil
}

// Push adds e on top of the stack.
func (s *Bounded[T]) Push(e T) error {
	if s.count >= len(s.elems) {
		return fmt.Errorf("stack: push: %w", core.ErrFull)
	}
	s.elems[s.count] = e
	s.count++
	return nil
}

// Pop removes and returns the top element. On an empty stack it returns the
// empty value and false.
func (s *Bounded[T]) Pop() (T, bool) {
	if s.count == 0 {
		return s.empty, false
	}
	s.count--
	top := s.elems[s.count]
	s.elems[s.count] = s.empty
	return top, true
}

// Peek returns the top element without removing it.
func (s *Bounded[T]) Peek() (T, bool) {
	if s.count == 0 {
		return s.empty, false
	}
	return s.elems[s.count-1], true
}

// Len returns the number of elements on the stack.
func (s *Bounded[T]) Len() int { return s.count }

// Cap returns the maximum number of elements.
func (s *Bounded[T]) Cap() int { return len(s.elems) }

// EmptyValue returns the value that stands for "no element".
func (s *Bounded[T]) EmptyValue() T { return s.empty }

// Clear removes all elements.
func (s *Bounded[T]) Clear() {
	if s.count == 0 {
		return
	}
	s.reset(s.elems[:s.count])
	s.count = 0
}

// All iterates from the top of the stack to the bottom.
func (s *Bounded[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.count - 1; i >= 0; i-- {
			if !yield(s.elems[i]) {
				return
			}
		}
	}
}

func (s *Bounded[T]) reset(slots []T) {
	for i := range slots {
		slots[i] = s.empty
	}
}
