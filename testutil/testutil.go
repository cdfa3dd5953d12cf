package testutil

import (
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // deterministic test data
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// DistinctUint32s returns n distinct values drawn from [0, limit).
// It panics if n > limit.
func (r *RNG) DistinctUint32s(n int, limit uint32) []uint32 {
	if uint64(n) > uint64(limit) {
		panic("testutil: not enough distinct values")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := roaring.New()
	out := make([]uint32, 0, n)
	for len(out) < n {
		v := uint32(r.rand.Int63n(int64(limit)))
		if seen.CheckedAdd(v) {
			out = append(out, v)
		}
	}
	return out
}

// Bitmap returns the set of values.
func Bitmap(values []uint32) *roaring.Bitmap {
	return roaring.BitmapOf(values...)
}

// SameSet reports whether a and b contain the same values, ignoring order
// and multiplicity.
func SameSet(a, b []uint32) bool {
	return Bitmap(a).Equals(Bitmap(b))
}
