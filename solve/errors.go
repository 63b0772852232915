package solve

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilDecomposition indicates a nil *decomp.Decomposition, or one
	// with a nil Root, was passed to Solve.
	ErrNilDecomposition = errors.New("solve: decomposition is nil or has no root")

	// ErrInvariantViolation indicates a structural assertion about the
	// decomposition failed during traversal — the spec.md InvariantViolation
	// class: a bug, or an adversarial input that bypassed tdbuilder's
	// earlier structural checks, since a well-formed decomposition built by
	// tdbuilder.Build should never trigger this.
	ErrInvariantViolation = errors.New("solve: decomposition invariant violated")
)
