package solve

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/decomp"
	"github.com/katalvlaran/domset/transition"
)

// Solve computes the minimum dominating set size of the graph described by
// dec's nice tree decomposition. dec must already be fully materialized
// (every bag's Table allocated by decomp.Bag.InitTable, and every Join
// bag's Triples allocated by decomp.Bag.InitTriples) — package tdbuilder
// does this when it builds a Decomposition from caller input.
//
// Returns the minimum dominating set size, or an error if dec is malformed
// in a way tdbuilder's earlier validation should have already caught
// (ErrInvariantViolation) or if a transition detects a shape mismatch.
func Solve(dec *decomp.Decomposition, opts ...Option) (int, error) {
	if dec == nil || dec.Root == nil {
		return 0, ErrNilDecomposition
	}
	if err := decomp.ValidateRoot(dec.Root); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{options: cfg}
	child := dec.Root.Children()[0]
	if err := r.process(child); err != nil {
		return 0, err
	}

	// Every vertex still present in child's bag is, from the root's point
	// of view, implicitly forgotten here: the same exclusion
	// transition.Forget applies to a single forgotten vertex (only Black
	// or White may stand; a free Grey was never actually confirmed
	// dominated by an IntroduceEdge) must hold for all of them at once,
	// or a vertex that is never forgotten by a dedicated Forget bag
	// (e.g. a vertex with no incident edges anywhere in the graph) would
	// read out its introduce-time free Grey entry unchallenged.
	grey := byte(color.Grey)
	best := decomp.Infinity
	for key, cost := range child.Table {
		if strings.IndexByte(key, grey) != -1 {
			continue
		}
		if cost < best {
			best = cost
		}
	}
	child.Table = nil
	child.Triples = nil

	if best == decomp.Infinity {
		return 0, fmt.Errorf("%w: no feasible dominating set in root's child (bag %d)", ErrInvariantViolation, child.ID)
	}
	return best, nil
}

// runner holds the mutable state shared across one Solve traversal.
type runner struct {
	options Options
}

// process recursively walks b's subtree in post-order, runs b's primary
// transition and any introduced-edge updates, then releases its children's
// Table/Triples now that b has consumed them.
func (r *runner) process(b *decomp.Bag) error {
	switch b.Type {
	case decomp.Leaf:
		if len(b.Children()) != 0 {
			return fmt.Errorf("%w: leaf bag %d has children", ErrInvariantViolation, b.ID)
		}
		transition.Leaf(b)

	case decomp.Introduce:
		child := b.Child1
		if child == nil {
			return fmt.Errorf("%w: introduce bag %d has no child", ErrInvariantViolation, b.ID)
		}
		if err := r.process(child); err != nil {
			return err
		}
		if err := transition.IntroduceVertex(b, child); err != nil {
			return err
		}

	case decomp.Forget:
		child := b.Child1
		if child == nil {
			return fmt.Errorf("%w: forget bag %d has no child", ErrInvariantViolation, b.ID)
		}
		if err := r.process(child); err != nil {
			return err
		}
		if err := transition.Forget(b, child); err != nil {
			return err
		}

	case decomp.Join:
		left, right := b.Child1, b.Child2
		if left == nil || right == nil {
			return fmt.Errorf("%w: join bag %d is missing a child", ErrInvariantViolation, b.ID)
		}
		if err := r.processJoinChildren(left, right); err != nil {
			return err
		}
		if err := transition.Join(b, left, right); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: bag %d has unrecognized type %v", ErrInvariantViolation, b.ID, b.Type)
	}

	for _, e := range b.Edges {
		if err := transition.IntroduceEdge(b, e); err != nil {
			return err
		}
	}

	for _, c := range b.Children() {
		c.Table = nil
		c.Triples = nil
	}
	return nil
}

// processJoinChildren runs left and right's subtrees, concurrently when
// r.options.ParallelJoins is set, synchronizing at the join barrier before
// returning.
func (r *runner) processJoinChildren(left, right *decomp.Bag) error {
	if !r.options.ParallelJoins {
		if err := r.process(left); err != nil {
			return err
		}
		return r.process(right)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = r.process(left)
	}()
	go func() {
		defer wg.Done()
		errs[1] = r.process(right)
	}()
	wg.Wait()

	if errs[0] != nil {
		return errs[0]
	}
	return errs[1]
}
