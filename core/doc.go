// Package core holds the result and error taxonomy shared by all containers.
//
// Fallible operations return (Outcome, error). Errors are hard failures and
// leave the container in its last consistent state; they are sentinels (or
// typed errors unwrapping to a sentinel) and are tested with errors.Is.
// Outcome distinguishes plain success from success with a side effect:
//
//	out, err := v.Resize(2)
//	switch {
//	case errors.Is(err, core.ErrUnsupported):
//	    // fixed-capacity vector
//	case err != nil:
//	    return err
//	case out == core.Discarded:
//	    // tail elements were dropped
//	}
package core
