package transition

import "github.com/katalvlaran/domset/decomp"

// addSaturating returns a+b, saturating to decomp.Infinity if either
// operand already is Infinity (spec.md §7, OverflowSentinel: "any sum
// involving ∞ is ∞").
func addSaturating(a, b int) int {
	if a == decomp.Infinity || b == decomp.Infinity {
		return decomp.Infinity
	}
	return a + b
}

// incSaturating returns a+1 unless a is already Infinity, in which case it
// stays Infinity (spec.md §4.5's Black-introduction rule: "C.table[π'] + 1
// unless C.table[π'] = ∞, in which case ∞").
func incSaturating(a int) int {
	if a == decomp.Infinity {
		return decomp.Infinity
	}
	return a + 1
}

// minCost returns the smaller of a and b, treating decomp.Infinity as the
// largest possible value (it already is, since it is math.MaxInt).
func minCost(a, b int) int {
	if a < b {
		return a
	}
	return b
}
