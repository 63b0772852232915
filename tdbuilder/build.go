package tdbuilder

import (
	"fmt"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// Build materializes specs into a *decomp.Decomposition, validating every
// structural invariant of spec.md §6 before returning. specs may be given
// in any order; parent/child relationships are resolved from each spec's
// Parent field, not from slice position.
//
// Checks (each failure is returned immediately, wrapped with the matching
// decomp sentinel error). Checks 2 and 4 run together in one pass over the
// specs, and checks 5 and 6 together in one pass over the bags, both in map
// iteration order, so when several violations exist, which one is reported
// is not fixed:
//  1. no duplicate bag ids (decomp.ErrDuplicateBagID)
//  2. every non-root spec's parent id refers to a spec that exists
//     (decomp.ErrMissingParent)
//  3. exactly one root (id 0, no parent) exists (decomp.ErrInvalidRoot)
//  4. no bag accumulates more than two children (decomp.ErrTooManyChildren)
//  5. every bag's introduced edges connect vertices present in that bag,
//     and leaf bags declare none (decomp.ErrEdgeEndpointNotInBag /
//     decomp.ErrEdgesOnLeaf)
//  6. every introduce/forget/join bag's children have the vertex-set shape
//     its type requires (decomp.ErrChildVertexSetMismatch)
//  7. the root itself satisfies decomp.ValidateRoot
//
// Once validated, every bag's Table is allocated via decomp.Bag.InitTable,
// and every Join bag's Triples via decomp.Bag.InitTriples.
func Build(specs []BagSpec, opts ...Option) (*decomp.Decomposition, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	in := cfg.interner
	if in == nil {
		in = color.NewInterner()
	}

	bags := make(map[int]*decomp.Bag, len(specs))
	specByID := make(map[int]BagSpec, len(specs))
	for _, spec := range specs {
		if _, exists := bags[spec.ID]; exists {
			return nil, fmt.Errorf("%w: bag id %d", decomp.ErrDuplicateBagID, spec.ID)
		}
		bags[spec.ID] = &decomp.Bag{
			ID:    spec.ID,
			Type:  spec.Type,
			Order: coloring.NewVertexOrder(spec.Vertices),
			Edges: spec.Edges,
		}
		specByID[spec.ID] = spec
	}

	var root *decomp.Bag
	var roots []int
	for id, spec := range specByID {
		b := bags[id]
		if spec.Parent == nil {
			roots = append(roots, id)
			continue
		}
		parent, ok := bags[*spec.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: bag %d references parent %d", decomp.ErrMissingParent, id, *spec.Parent)
		}
		if err := attachChild(parent, b); err != nil {
			return nil, err
		}
		b.Parent = parent
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one root, found %d", decomp.ErrInvalidRoot, len(roots))
	}
	root = bags[roots[0]]

	for _, b := range bags {
		if err := decomp.ValidateEdges(b); err != nil {
			return nil, err
		}
		if b.IsRoot() {
			// The root's own type is not dispatched during traversal
			// (package solve reads its single child's table directly), so
			// only decomp.ValidateRoot's shape applies to it, not the
			// per-type child-count/vertex-set checks below.
			continue
		}
		if err := validateShape(b); err != nil {
			return nil, err
		}
	}
	if err := decomp.ValidateRoot(root); err != nil {
		return nil, err
	}

	for _, b := range bags {
		b.InitTable(in)
		if b.Type == decomp.Join {
			b.InitTriples(in)
		}
	}

	return &decomp.Decomposition{Bags: bags, Root: root}, nil
}

// attachChild registers child under parent as Child1 if vacant, else
// Child2, else reports too many children.
func attachChild(parent, child *decomp.Bag) error {
	switch {
	case parent.Child1 == nil:
		parent.Child1 = child
	case parent.Child2 == nil:
		parent.Child2 = child
	default:
		return fmt.Errorf("%w: bag %d already has two children", decomp.ErrTooManyChildren, parent.ID)
	}
	return nil
}

// validateShape dispatches to the decomp validator matching b's type, and
// checks Leaf bags have no children.
func validateShape(b *decomp.Bag) error {
	switch b.Type {
	case decomp.Leaf:
		if len(b.Children()) != 0 {
			return fmt.Errorf("%w: leaf bag %d has children", decomp.ErrMalformedDecomposition, b.ID)
		}
	case decomp.Introduce:
		if b.Child1 == nil || b.Child2 != nil {
			return fmt.Errorf("%w: introduce bag %d must have exactly one child", decomp.ErrMalformedDecomposition, b.ID)
		}
		_, err := decomp.ValidateIntroduce(b, b.Child1)
		if err != nil {
			return err
		}
	case decomp.Forget:
		if b.Child1 == nil || b.Child2 != nil {
			return fmt.Errorf("%w: forget bag %d must have exactly one child", decomp.ErrMalformedDecomposition, b.ID)
		}
		_, err := decomp.ValidateForget(b, b.Child1)
		if err != nil {
			return err
		}
	case decomp.Join:
		if b.Child1 == nil || b.Child2 == nil {
			return fmt.Errorf("%w: join bag %d must have exactly two children", decomp.ErrMalformedDecomposition, b.ID)
		}
		if err := decomp.ValidateJoin(b, b.Child1, b.Child2); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: bag %d has unknown type %v", decomp.ErrUnknownBagType, b.ID, b.Type)
	}
	return nil
}
