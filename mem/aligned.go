package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a slice of n elements whose first element starts at
// a memory address divisible by Alignment.
//
// Alignment is only possible when the element size divides Alignment; for
// other element types the buffer is a plain allocation. The underlying array
// is over-allocated and kept alive by the returned slice, whose capacity is
// exactly n.
func AllocAligned[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	size := SizeOf[T]()
	if size == 0 || size > Alignment || Alignment%size != 0 {
		return make([]T, n)
	}

	// Enough slack to shift the start up to Alignment-1 bytes.
	extra := int(Alignment / size)
	buf := make([]T, n+extra)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	pad := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)
	if pad%size != 0 {
		// The element alignment is smaller than its size; no element index
		// lands on the boundary.
		return buf[:n:n]
	}

	off := int(pad / size)
	return buf[off : off+n : off+n]
}

// IsAligned reports whether buf starts on an Alignment boundary.
func IsAligned[T any](buf []T) bool {
	if cap(buf) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // unsafe is required for memory alignment
	return addr&(Alignment-1) == 0
}
