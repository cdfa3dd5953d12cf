package mem

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/containers/core"
	"github.com/hupe1980/containers/internal/conv"
)

// Allocator creates typed buffers, optionally charged against a Budget and
// optionally 64-byte aligned.
//
// The zero value (and a nil *Allocator) allocates from the Go heap without
// accounting.
type Allocator struct {
	budget  Budget
	aligned bool
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithBudget charges every allocation against b.
func WithBudget(b Budget) Option {
	return func(a *Allocator) {
		a.budget = b
	}
}

// WithAlignment makes the allocator return 64-byte aligned buffers.
func WithAlignment() Option {
	return func(a *Allocator) {
		a.aligned = true
	}
}

// NewAllocator creates an Allocator.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Bytes returns the size in bytes of n elements of type T.
func Bytes[T any](n int) (int64, error) {
	return conv.ElemBytes(n, SizeOf[T]())
}

// Alloc returns a buffer of n elements (len == cap == n).
func Alloc[T any](a *Allocator, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("mem: alloc %d elements: %w", n, core.ErrInvalidArgument)
	}
	bytes, err := Bytes[T](n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrAllocationFailed, err)
	}
	if err := a.acquire(bytes); err != nil {
		return nil, err
	}
	return makeBuf[T](a, n), nil
}

// Realloc returns a buffer of n elements holding the first min(len(buf), n)
// elements of buf.
//
// On failure buf is returned unchanged together with the error.
func Realloc[T any](a *Allocator, buf []T, n int) ([]T, error) {
	if n < 0 {
		return buf, fmt.Errorf("mem: realloc to %d elements: %w", n, core.ErrInvalidArgument)
	}
	if n == len(buf) {
		return buf, nil
	}
	oldBytes, err := Bytes[T](len(buf))
	if err != nil {
		return buf, fmt.Errorf("%w: %w", core.ErrAllocationFailed, err)
	}
	newBytes, err := Bytes[T](n)
	if err != nil {
		return buf, fmt.Errorf("%w: %w", core.ErrAllocationFailed, err)
	}

	if newBytes > oldBytes {
		if err := a.acquire(newBytes - oldBytes); err != nil {
			return buf, err
		}
	}

	nb := makeBuf[T](a, n)
	copy(nb, buf)

	if newBytes < oldBytes {
		a.release(oldBytes - newBytes)
	}
	return nb, nil
}

// Free returns buf's bytes to the budget. buf must not be used afterwards.
func Free[T any](a *Allocator, buf []T) {
	if len(buf) == 0 {
		return
	}
	bytes, err := Bytes[T](len(buf))
	if err != nil {
		return
	}
	a.release(bytes)
}

func makeBuf[T any](a *Allocator, n int) []T {
	if n == 0 {
		return nil
	}
	if a != nil && a.aligned {
		return AllocAligned[T](n)
	}
	return make([]T, n)
}

func (a *Allocator) acquire(bytes int64) error {
	if a == nil || a.budget == nil || bytes <= 0 {
		return nil
	}
	if err := a.budget.AcquireMemory(bytes); err != nil {
		return fmt.Errorf("%w: %w", core.ErrAllocationFailed, err)
	}
	return nil
}

func (a *Allocator) release(bytes int64) {
	if a == nil || a.budget == nil || bytes <= 0 {
		return
	}
	a.budget.ReleaseMemory(bytes)
}
