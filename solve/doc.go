// Package solve implements the traversal driver: the top-level entry point
// that walks a nice tree decomposition in post-order, dispatches each bag to
// its transition in package transition, and reads out the minimum dominating
// set size at the root.
//
// Complexity:
//
//   - Time:  O(n · 3^k) for the primary transitions plus O(n · k · 3^k) for
//     introduce-edge updates, plus O(j · 4^k) for join bags, where n is the
//     number of bags, k the treewidth, and j the number of join bags.
//   - Space: O(n · 3^k) plus O(j · 4^k) at the start, since every bag's
//     Table (and every join bag's Triples) is allocated before Solve runs;
//     each bag's Table and Triples are released once its parent has
//     consumed them, so live memory shrinks as the traversal proceeds.
//
// Traversal order:
//
//   - Each bag's children are fully processed (recursively, in post-order)
//     before the bag's own transition runs.
//   - After the primary transition, every introduced edge declared on the
//     bag is applied via transition.IntroduceEdge, in declaration order.
//   - The root bag never runs a transition of its own; its single child
//     (width exactly one, per decomp.ValidateRoot) holds the final answer:
//     the minimum value across that child's Table entries in which no
//     vertex is colored Grey (the vertex is treated as forgotten, as in
//     transition.Forget).
//
// Concurrency:
//
// By default Solve processes a join bag's two children sequentially. With
// WithParallelJoins, the two children of every join bag are processed on
// separate goroutines, synchronized at the join point before
// transition.Join runs — safe because color.Interner is always concurrency-safe
// and no two concurrently running subtrees ever touch the same Bag.
package solve
