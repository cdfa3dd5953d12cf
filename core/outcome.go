package core

// Outcome describes how a successful operation ended.
//
// Operations return (Outcome, error). A non-nil error is a hard failure and
// the Outcome is meaningless; with a nil error the Outcome tells whether the
// call had a secondary effect the caller may care about.
type Outcome uint8

const (
	// Done means the operation succeeded with no side effect worth reporting.
	Done Outcome = iota
	// NoChange means the operation succeeded without modifying anything.
	NoChange
	// Discarded means elements past the new capacity were dropped.
	Discarded
	// WasEmpty means a removal was requested on an empty container.
	WasEmpty
	// Reordered means an existing element was moved to another slot.
	Reordered
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case NoChange:
		return "no change"
	case Discarded:
		return "elements discarded"
	case WasEmpty:
		return "already empty"
	case Reordered:
		return "reordered"
	default:
		return "unknown"
	}
}

// Noteworthy reports whether the outcome carries a side effect beyond plain success.
func (o Outcome) Noteworthy() bool { return o != Done }
