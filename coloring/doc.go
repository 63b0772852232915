// Package coloring implements the per-bag state key of the dominating-set
// dynamic program: a Coloring, an order-insensitive assignment of colors to
// the vertices of one bag.
//
// What
//
//   - Coloring presents a set-valued contract (Insert, Has, Each, Clone)
//     over color.ColorPair entries, exactly as spec.md §3/§4.2 specify.
//   - Internally, a Coloring is a fixed-order []color.Color indexed by the
//     bag's canonical vertex order, since every Coloring produced for one
//     bag shares that same vertex set (spec.md §4.2 explicitly permits
//     this representation; it is the one this package uses).
//   - Hash() is the commutative (order-independent) combination of each
//     entry's hash, matching spec.md's XOR-sum description.
//
// Why
//
//   - The DP hashes and compares Colorings in every transition's inner
//     loop; fixing the vertex order once per bag turns both hashing and
//     equality into straight array operations with no per-call set
//     construction.
//
// Complexity
//
//   - Insert/Has/At: O(1).
//   - Hash/Equal: O(k) where k = len(vertex order).
//   - Clone: O(k).
package coloring
