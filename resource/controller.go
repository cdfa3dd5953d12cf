package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

	// ErrAllocationRateExceeded is returned when allocations arrive faster
	// than the configured rate.
	ErrAllocationRateExceeded = errors.New("allocation rate exceeded")
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// AllocationsPerSec caps how many reservations per second are granted.
	// If 0, unlimited.
	AllocationsPerSec float64

	// AllocationBurst is the number of reservations allowed in a burst.
	// If 0, defaults to 1.
	AllocationBurst int
}

// Controller is a memory budget shared by any number of containers.
//
// It implements mem.Budget and is safe for concurrent use. A nil *Controller
// grants everything.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Allocation rate
	allocLimiter *rate.Limiter // nil if unlimited

	granted atomic.Int64
	refused atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.AllocationBurst <= 0 {
		cfg.AllocationBurst = 1
	}

	c := &Controller{
		cfg: cfg,
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.AllocationsPerSec > 0 {
		c.allocLimiter = rate.NewLimiter(rate.Limit(cfg.AllocationsPerSec), cfg.AllocationBurst)
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded and
// ErrAllocationRateExceeded if the allocation rate is exhausted.
// Non-blocking - callers control retry/backoff policy.
//
// Only reservations that fit the memory limit consume allocation rate.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			c.refused.Add(1)
			return ErrMemoryLimitExceeded
		}
	}

	if c.allocLimiter != nil && !c.allocLimiter.AllowN(time.Now(), 1) {
		if c.memSem != nil {
			c.memSem.Release(bytes)
		}
		c.refused.Add(1)
		return ErrAllocationRateExceeded
	}

	c.memUsed.Add(bytes)
	c.granted.Add(1)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// WaitAllocation blocks until the allocation rate admits another reservation
// or ctx is done. Callers use it to pace retries after ErrAllocationRateExceeded.
func (c *Controller) WaitAllocation(ctx context.Context) error {
	if c == nil || c.allocLimiter == nil {
		return nil
	}
	return c.allocLimiter.Wait(ctx)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// Stats returns the number of granted and refused reservations.
func (c *Controller) Stats() (granted, refused int64) {
	if c == nil {
		return 0, 0
	}
	return c.granted.Load(), c.refused.Load()
}
