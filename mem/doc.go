// Package mem is the backing-store facility used by the containers.
//
// # Budgeted Allocation
//
// Alloc, Realloc and Free create, resize and drop typed buffers. When the
// Allocator carries a Budget, every byte is reserved before the buffer is
// created and returned when it shrinks or is dropped; a refused reservation
// surfaces as core.ErrAllocationFailed and leaves the caller's buffer intact.
// A nil *Allocator is the plain Go heap.
//
// # Aligned Allocation
//
// AllocAligned returns buffers whose first element sits on a 64-byte
// boundary (AVX-512 friendly) whenever the element size allows it.
package mem
