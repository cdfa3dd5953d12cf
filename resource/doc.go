// Package resource provides a shared memory budget for containers.
//
// A Controller enforces a hard byte limit (golang.org/x/sync/semaphore) and an
// optional allocation rate (golang.org/x/time/rate). It implements mem.Budget,
// so any vector built with a budgeted mem.Allocator charges its buffers here:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	alloc := mem.NewAllocator(mem.WithBudget(rc))
//	v, err := vector.NewDynamic[int64](64, vector.WithAllocator(alloc))
//
// Reservations never block; a refusal reaches the container as
// core.ErrAllocationFailed wrapping ErrMemoryLimitExceeded or
// ErrAllocationRateExceeded.
package resource
