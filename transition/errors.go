package transition

import "errors"

// Sentinel errors for the transition package. These surface
// spec.md §7's InvariantViolation class: failures that indicate a bug or
// an adversarial input that bypassed tdbuilder's earlier structural
// checks, since a well-formed Decomposition should never trigger them.
var (
	// ErrMissingChildEntry indicates a child Table lookup found no entry
	// for a Coloring the transition derived from the parent — this can
	// only happen if the child's Table was not fully initialized (a
	// violation of spec.md P1).
	ErrMissingChildEntry = errors.New("transition: child table missing expected coloring")

	// ErrShapeMismatch indicates the parent/child (or parent/left/right)
	// vertex sets do not have the shape the transition requires.
	ErrShapeMismatch = errors.New("transition: bag shapes do not match transition contract")
)
