package conv

import (
	"fmt"
	"math"
)

// ElemBytes returns n*size as an int64 byte count.
// It fails for negative counts and when the product overflows.
func ElemBytes(n int, size uintptr) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer overflow: %d elements (negative)", n)
	}
	if n == 0 || size == 0 {
		return 0, nil
	}
	if uint64(size) > math.MaxInt64 || uint64(n) > math.MaxInt64/uint64(size) {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes", n, size)
	}
	return int64(n) * int64(size), nil
}

// AddInt adds two non-negative ints, failing on overflow.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d (negative operand)", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}
