// Package containers is the root of a small library of generic, allocation
// conscious containers:
//
//   - vector: resizable arrays in a Dynamic (heap, fixed growth increment)
//     and a Static (caller-owned storage) flavour, with O(1) swap-based
//     PushAt/PopAt.
//   - list: an intrusive circular doubly-linked list.
//   - stack: a fixed-capacity LIFO stack with a configurable empty value.
//
// The containers themselves never log and hold no locks. Memory used by
// Dynamic vectors can be charged against a shared budget (package resource)
// through a mem.Allocator. This package adds the optional observability
// layer on top of such a budget:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	metrics := &containers.BasicMetricsCollector{}
//	budget := containers.Instrument(rc,
//	    containers.WithLogger(containers.NewJSONLogger(slog.LevelDebug)),
//	    containers.WithMetricsCollector(metrics),
//	)
//
//	v, _ := vector.NewDynamic[float32](1024,
//	    vector.WithAllocator(mem.NewAllocator(mem.WithBudget(budget))))
//
// # Error Handling
//
// All fallible operations return (core.Outcome, error) or error. Errors are
// sentinels from package core, wrapped with the failing operation; test them
// with errors.Is:
//
//	if _, err := v.PushBack(x); errors.Is(err, core.ErrAllocationFailed) {
//	    // budget exhausted, v is unchanged
//	}
package containers
