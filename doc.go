// Package domset computes the exact minimum dominating set size of a
// graph via dynamic programming over a caller-supplied nice tree
// decomposition.
//
// The computation is organized leaves-first into six packages:
//
//	color/     — (vertex, color) pair canonicalization (White/Black/Grey)
//	coloring/  — order-insensitive partial color assignments over a bag
//	decomp/    — Bag, BagType, state tables, join consistent-triple lists
//	transition/ — the four DP rules: introduce-vertex, introduce-edge, forget, join
//	solve/     — post-order traversal driver and public Solve entry point
//	tdbuilder/ — input adapter: BagSpec -> validated *decomp.Decomposition
//
// tdfile decodes the YAML on-disk decomposition format that tdbuilder
// consumes, and cmd/domset is a thin CLI wrapping
// tdfile.Load -> tdbuilder.Build -> solve.Solve.
//
// verify holds a small brute-force dominating-set oracle and a handful
// of deterministic graph constructors, used only by tests to cross-check
// the dynamic program's output against exhaustive search on known
// topologies.
//
// The decomposition itself is never computed from a raw graph here —
// callers are expected to supply one already built (e.g. by an external
// tool), matching the pre-built-input framing of the system this package
// implements.
package domset
