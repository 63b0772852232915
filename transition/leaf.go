package transition

import "github.com/katalvlaran/domset/decomp"

// Leaf initializes a Leaf bag's Table, per spec.md §4.4 and the §9 shim
// discussion. A strict nice-TD leaf has an empty vertex set, so its Table
// (populated by decomp.Bag.InitTable) holds exactly one entry; Leaf corrects
// that entry to cost 0.
//
// A single-vertex-leaf shim (width > 0, used when a caller's decomposition
// was not reduced to strict nice-TD form) is left untouched here: its Table
// is never consulted, since IntroduceVertex bypasses child.Table entirely
// whenever child.Type == decomp.Leaf and computes the base case directly
// from the introduced vertex's own color.
func Leaf(b *decomp.Bag) {
	if b.Width() != 0 {
		return
	}
	for key := range b.Table {
		b.Table[key] = 0
	}
}
