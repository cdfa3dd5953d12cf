package vector

import "github.com/hupe1980/containers/mem"

// DefaultGrowth is the number of slots a full Dynamic vector adds per growth.
const DefaultGrowth = 4

type options struct {
	growth int
	alloc  *mem.Allocator
}

// Option configures a Dynamic vector.
type Option func(*options)

// WithGrowth sets how many slots are added when a full vector grows.
// Larger values mean fewer reallocations and more slack memory.
func WithGrowth(n int) Option {
	return func(o *options) {
		o.growth = n
	}
}

// WithAllocator sets the allocator used for the backing buffer.
//
// Use it to charge the buffer against a shared budget or to get 64-byte
// aligned storage:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, _ := vector.NewDynamic[float32](128,
//	    vector.WithAllocator(mem.NewAllocator(mem.WithBudget(rc), mem.WithAlignment())))
func WithAllocator(a *mem.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}
