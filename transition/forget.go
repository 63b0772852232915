package transition

import (
	"fmt"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// Forget updates parent's Table from child's Table, per spec.md §4.7.
// child.Vertices() must equal parent.Vertices() plus exactly one vertex
// (the forgotten vertex w); decomp.ValidateForget checks this.
//
// A forgotten vertex may only be extended as Black or White here — Grey is
// deliberately excluded, since a correct traversal only forgets a vertex
// after its domination requirement has already been resolved by an
// IntroduceEdge step (spec.md §4.7's rationale).
func Forget(parent, child *decomp.Bag) error {
	forgotten, err := decomp.ValidateForget(parent, child)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	parentVertices := parent.Vertices()
	for key := range parent.Table {
		pi, err := coloring.FromKey(parent.Order, key)
		if err != nil {
			return fmt.Errorf("transition: Forget: %w", err)
		}

		extended := coloring.New(child.Order)
		for _, v := range parentVertices {
			c, _ := pi.ColorOf(v)
			if err := extended.Set(v, c); err != nil {
				return fmt.Errorf("transition: Forget: %w", err)
			}
		}

		blackCopy := extended.Clone()
		if err := blackCopy.Set(forgotten, color.Black); err != nil {
			return fmt.Errorf("transition: Forget: %w", err)
		}
		whiteCopy := extended.Clone()
		if err := whiteCopy.Set(forgotten, color.White); err != nil {
			return fmt.Errorf("transition: Forget: %w", err)
		}

		parent.Table[key] = minCost(child.Table.Get(blackCopy), child.Table.Get(whiteCopy))
	}
	return nil
}
