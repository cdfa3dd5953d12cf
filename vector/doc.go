// Package vector provides generic resizable arrays with two allocation modes.
//
// Dynamic owns a heap buffer and grows it by a fixed increment (DefaultGrowth
// slots unless WithGrowth says otherwise) whenever a push finds it full.
// Static wraps caller-owned storage, never allocates and refuses to resize.
// Both implement Vector, so code can be written once against the interface:
//
//	v, err := vector.NewDynamic[int](2, vector.WithGrowth(4))
//	if err != nil {
//	    return err
//	}
//	defer v.Free()
//
//	for i := range 3 {
//	    if _, err := v.PushBack(i); err != nil {
//	        return err
//	    }
//	}
//	// v.Cap() == 6
//
// # Element order
//
// PushAt and PopAt are O(1). PushAt moves the element it displaces to the
// tail; PopAt fills the hole with the last element. Callers needing a stable
// order must use PushBack and PopBack only.
//
// # Results
//
// Mutating operations return (core.Outcome, error); see package core.
// Shrinking with Resize below Len() reports core.Discarded, PopBack on an
// empty vector reports core.WasEmpty. Errors leave the vector unchanged.
//
// Vectors are not safe for concurrent use.
package vector
