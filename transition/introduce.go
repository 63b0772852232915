package transition

import (
	"fmt"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// IntroduceVertex updates parent's Table from child's Table, per spec.md
// §4.5. parent.Vertices() must equal child.Vertices() plus exactly one
// vertex (the introduced vertex); decomp.ValidateIntroduce checks this, and
// a violation is returned as ErrShapeMismatch.
//
// If child is a Leaf bag, the base case of spec.md §4.5 applies directly
// (cost Infinity/0/1 for White/Grey/Black) without consulting child.Table
// at all. This single rule correctly covers both conventions spec.md §9
// discusses: a strict nice-TD Leaf with an empty vertex set (whose Table
// holds exactly one entry, cost 0, so consulting it would give the same
// answer anyway), and the single-vertex-leaf compatibility shim (whose
// Table was never meaningfully populated, so it must not be consulted).
func IntroduceVertex(parent, child *decomp.Bag) error {
	introducedVertex, err := decomp.ValidateIntroduce(parent, child)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	childVertices := child.Vertices()

	for key := range parent.Table {
		pi, err := coloring.FromKey(parent.Order, key)
		if err != nil {
			return fmt.Errorf("transition: IntroduceVertex: %w", err)
		}
		cv, ok := pi.ColorOf(introducedVertex)
		if !ok {
			return fmt.Errorf("%w: introduced vertex %d absent from decoded coloring", ErrShapeMismatch, introducedVertex)
		}

		var cost int
		if child.Type == decomp.Leaf {
			cost = baseCaseCost(cv)
		} else {
			restricted := coloring.New(child.Order)
			for _, v := range childVertices {
				c, _ := pi.ColorOf(v)
				if err := restricted.Set(v, c); err != nil {
					return fmt.Errorf("transition: IntroduceVertex: %w", err)
				}
			}
			childCost := child.Table.Get(restricted)
			switch cv {
			case color.White:
				cost = decomp.Infinity
			case color.Grey:
				cost = childCost
			case color.Black:
				cost = incSaturating(childCost)
			default:
				return fmt.Errorf("%w: unrecognized color %s", ErrShapeMismatch, cv)
			}
		}
		parent.Table[key] = cost
	}
	return nil
}

func baseCaseCost(cv color.Color) int {
	switch cv {
	case color.White:
		return decomp.Infinity
	case color.Grey:
		return 0
	case color.Black:
		return 1
	default:
		return decomp.Infinity
	}
}
