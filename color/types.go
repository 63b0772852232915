package color

import (
	"errors"
	"fmt"
)

// Sentinel errors for the color package.
var (
	// ErrUnknownColor indicates a Color value outside {White, Black, Grey}.
	ErrUnknownColor = errors.New("color: unknown color value")

	// ErrNegativeVertex indicates a vertex id was negative; vertex ids are
	// non-negative integers throughout this module (spec.md §3, Vertex).
	ErrNegativeVertex = errors.New("color: vertex id must be non-negative")
)

// Color is one of White, Black, Grey, carrying the meaning spec.md §3
// assigns it inside a partial subproblem rooted at the current bag.
type Color uint8

const (
	// White: not selected into the dominating set and not yet dominated
	// within the subtree processed so far.
	White Color = iota

	// Black: selected into the dominating set.
	Black

	// Grey: not selected, and already dominated (or released from the
	// domination requirement) within the subtree.
	Grey
)

// All lists the three colors in a fixed, stable order used whenever the DP
// needs to enumerate all colors for a vertex (bag-table initialization,
// consistent-triple enumeration).
var All = [3]Color{White, Black, Grey}

// String renders a Color for diagnostics and log lines.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	case Grey:
		return "Grey"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the three defined colors.
func (c Color) Valid() bool {
	return c == White || c == Black || c == Grey
}

// ColorPair is a canonical (vertex, color) value. Only Interner.Intern
// produces ColorPairs; two pairs with equal (Vertex, Color) obtained from
// the same Interner are identical pointers, so == is a sound equality test.
type ColorPair struct {
	Vertex int
	Color  Color
}

// String renders a ColorPair for diagnostics.
func (p *ColorPair) String() string {
	return fmt.Sprintf("%d->%s", p.Vertex, p.Color)
}
