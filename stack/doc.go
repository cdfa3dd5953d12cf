// Package stack provides a fixed-capacity LIFO stack.
//
// Bounded never grows: Push on a full stack fails with core.ErrFull. Pop on
// an empty stack does not fail; it returns the stack's empty value, which
// defaults to the zero T and can be set with WithEmptyValue. Popped slots
// are reset to the empty value so the stack holds no stale references.
package stack
