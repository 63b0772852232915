package transition

import (
	"fmt"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// IntroduceEdge applies spec.md §4.6 to bag b for a single introduced edge
// e, in place over b.Table. Must be called after b's primary transition
// and, when b declares several edges, once per edge in declaration order
// (spec.md §5's ordering guarantee; package solve enforces the order).
//
// Per spec.md §4.6, every update in one pass reads from an entry that is
// itself never rewritten during that same pass (a Black/Grey or Grey/Black
// entry is read only by updates to Black/White or White/Black entries,
// never to itself), so a single pass over the live table is correct and no
// double-buffering is required.
func IntroduceEdge(b *decomp.Bag, e decomp.Edge) error {
	if _, ok := b.Order.PositionOf(e.U); !ok {
		return fmt.Errorf("%w: edge endpoint %d not in bag %d", ErrShapeMismatch, e.U, b.ID)
	}
	if _, ok := b.Order.PositionOf(e.V); !ok {
		return fmt.Errorf("%w: edge endpoint %d not in bag %d", ErrShapeMismatch, e.V, b.ID)
	}

	for key := range b.Table {
		pi, err := coloring.FromKey(b.Order, key)
		if err != nil {
			return fmt.Errorf("transition: IntroduceEdge: %w", err)
		}
		uCol, _ := pi.ColorOf(e.U)
		vCol, _ := pi.ColorOf(e.V)

		switch {
		case uCol == color.Black && vCol == color.White:
			vGrey := pi.Clone()
			if err := vGrey.Set(e.V, color.Grey); err != nil {
				return fmt.Errorf("transition: IntroduceEdge: %w", err)
			}
			b.Table[key] = b.Table.Get(vGrey)
		case uCol == color.White && vCol == color.Black:
			uGrey := pi.Clone()
			if err := uGrey.Set(e.U, color.Grey); err != nil {
				return fmt.Errorf("transition: IntroduceEdge: %w", err)
			}
			b.Table[key] = b.Table.Get(uGrey)
		}
	}
	return nil
}
