package decomp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decomp package. Most are wrapped with
// fmt.Errorf("%w: ...") at the point of detection to carry offending
// ids/vertices, then matched by callers via errors.Is.
var (
	// ErrMalformedDecomposition is the umbrella sentinel for structural
	// violations of spec.md §6's preconditions, wrapped by every more
	// specific structural sentinel below (all but ErrInvariantViolation).
	ErrMalformedDecomposition = errors.New("decomp: malformed decomposition")

	// ErrDuplicateBagID indicates two bag specs declared the same id.
	ErrDuplicateBagID = fmt.Errorf("%w: duplicate bag id", ErrMalformedDecomposition)

	// ErrMissingParent indicates a non-root bag with no parent id, or a
	// parent id that names a bag that does not exist.
	ErrMissingParent = fmt.Errorf("%w: missing or unresolved parent", ErrMalformedDecomposition)

	// ErrTooManyChildren indicates a bag accumulated more than two
	// children while resolving parent pointers.
	ErrTooManyChildren = fmt.Errorf("%w: bag has more than two children", ErrMalformedDecomposition)

	// ErrEdgeEndpointNotInBag indicates an introduced edge referenced a
	// vertex absent from its own bag.
	ErrEdgeEndpointNotInBag = fmt.Errorf("%w: introduced edge endpoint not in bag", ErrMalformedDecomposition)

	// ErrChildVertexSetMismatch indicates an Introduce/Forget/Join bag's
	// child vertex set does not have the shape spec.md §3 requires.
	ErrChildVertexSetMismatch = fmt.Errorf("%w: child vertex set mismatch", ErrMalformedDecomposition)

	// ErrInvalidRoot indicates bag id 0 is missing, has a parent, is
	// non-empty, or does not have exactly one child.
	ErrInvalidRoot = fmt.Errorf("%w: invalid root bag", ErrMalformedDecomposition)

	// ErrEdgesOnLeaf indicates a Leaf bag declared introduced edges, which
	// spec.md §3 forbids.
	ErrEdgesOnLeaf = fmt.Errorf("%w: leaf bag may not introduce edges", ErrMalformedDecomposition)

	// ErrUnknownBagType indicates a BagType outside {Leaf, Introduce,
	// Forget, Join}.
	ErrUnknownBagType = fmt.Errorf("%w: unknown bag type", ErrMalformedDecomposition)

	// ErrInvariantViolation indicates an assertion failure discovered at
	// transition time rather than at build time — e.g. join children with
	// mismatched vertex sets, or a root child whose width is not 1
	// (spec.md §7).
	ErrInvariantViolation = errors.New("decomp: invariant violation")
)
