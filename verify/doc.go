// Package verify is test-only infrastructure: a tiny adjacency-list graph
// type, a handful of deterministic topology constructors, and a
// brute-force dominating-set oracle, used to cross-check package solve's
// dynamic-programming result against exhaustive search on small graphs
// whose nice tree decomposition was also hand-built for a solve_test.go
// scenario.
//
// Graph mirrors core.Graph's mutex-guarded adjacency-list shape, restyled
// for this domain's needs: unweighted, undirected, int-keyed vertices,
// no directed/multi-edge/loop modes (none of which this system's graphs
// ever have, per spec.md §1's non-goals).
package verify
