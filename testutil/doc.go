// Package testutil provides testing utilities for the containers.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.DistinctUint32s(100, 1<<20)
//
// # Membership Checks
//
// Swap-based vector operations do not keep element order, so property tests
// compare contents as sets:
//
//	ok := testutil.SameSet(v.Data(), expected)
package testutil
