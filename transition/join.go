package transition

import (
	"fmt"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/decomp"
)

// Join updates parent's Table from left and right's Tables using parent's
// precomputed TripleList, per spec.md §4.8. left and right must both carry
// exactly parent's vertex set; decomp.ValidateJoin checks this.
//
// For each precomputed triple (π, π_L, π_R), candidate cost is
// left[π_L] + right[π_R] - b, where b is the number of Black vertices in
// π — correcting for Black vertices counted once in each subtree but only
// once in the joined set. parent.Table[π] becomes the minimum candidate
// cost over all triples whose Parent coloring equals π (several triples
// may share the same Parent coloring since the consistency table allows
// more than one (left, right) pair per parent assignment at White/Grey
// vertices).
func Join(parent, left, right *decomp.Bag) error {
	if err := decomp.ValidateJoin(parent, left, right); err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if len(parent.Triples) == 0 {
		return fmt.Errorf("%w: join bag %d has no precomputed consistent triples", ErrShapeMismatch, parent.ID)
	}

	for key := range parent.Table {
		parent.Table[key] = decomp.Infinity
	}

	for _, triple := range parent.Triples {
		blackCount := 0
		triple.Parent.Each(func(_ int, c color.Color) {
			if c == color.Black {
				blackCount++
			}
		})

		leftCost := left.Table.Get(triple.Left)
		rightCost := right.Table.Get(triple.Right)

		cand := decomp.Infinity
		if leftCost != decomp.Infinity && rightCost != decomp.Infinity {
			cand = leftCost + rightCost - blackCount
		}

		key := triple.Parent.Key()
		parent.Table[key] = minCost(parent.Table[key], cand)
	}
	return nil
}
