// Package conv provides overflow-checked size arithmetic.
//
// Buffer sizes are computed from element counts supplied by callers; these
// helpers turn an overflow into an error instead of a wrapped value.
package conv
