// Package decomp defines the Bag, BagType, Table, and Decomposition types
// that together represent a nice tree decomposition once it has been
// validated and linked, plus the per-bag state-table initialization
// described by spec.md §4.3.
//
// What
//
//   - BagType: Leaf, Introduce, Forget, Join.
//   - Bag: one node of the decomposition — id, type, vertex order,
//     introduced edges, parent/child links, its Table, and (Join bags
//     only) its TripleList.
//   - Table: BagStateTable, a mapping from Coloring key to cost (spec.md
//     §3); every bag's Table always holds exactly 3^k keys after
//     initialization, where k is the bag's width.
//   - TripleList: the precomputed, pointwise-consistent (parent, left,
//     right) Coloring triples used by the Join transition; exactly 4^k
//     entries (spec.md §3, §4.3).
//   - Decomposition: owns every Bag, indexed by id, plus the resolved
//     root.
//
// Why
//
//   - Separating "validated, linked, stateful bag" (this package) from
//     "caller-facing bag description" (package tdbuilder's BagSpec) keeps
//     the DP's hot data structures free of the I/O-facing shape the
//     caller provides, mirroring the teacher's separation of core.Graph
//     from builder.BuilderOption.
//
// Complexity
//
//   - Table initialization: Θ(3^k) per bag of width k.
//   - TripleList initialization (Join bags only): Θ(4^k) per bag.
package decomp
