// Package color defines the three-valued coloring used by the dominating-set
// dynamic program, and an Interner that canonicalizes (vertex, color) pairs
// so that identity comparison can replace structural comparison in the DP's
// inner loops.
//
// What
//
//   - Color: White (not selected, still demands domination), Black
//     (selected into the dominating set), Grey (not selected, already
//     dominated or released from the domination requirement).
//   - ColorPair: a canonical (vertex, color) value. Two pairs with equal
//     (vertex, color) obtained through the same Interner share identity.
//   - Interner: safe for concurrent Intern calls (see package solve's
//     WithParallelJoins option), so sibling subtrees may be processed
//     concurrently without racing on canonicalization.
//
// Why
//
//   - The DP repeatedly tests "does this coloring contain (v, c)?" and
//     hashes colorings keyed by color assignment. Interning collapses
//     both operations to pointer/identity comparisons.
//
// Complexity
//
//   - Intern: amortized O(1) (map lookup/insert under a striped lock).
//   - Memory: bounded by |V| × 3 for the lifetime of a single solve.
package color
