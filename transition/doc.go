// Package transition implements the dominating-set dynamic program's four
// per-bag transition rules: Leaf (base case), IntroduceVertex, Forget, and
// Join, plus the IntroduceEdge update applied after a bag's primary
// transition (spec.md §4.4-§4.8).
//
// Each function reads its child(ren)'s already-populated Table (and, for
// Join, TripleList) and writes the bag's own Table. None of them mutate a
// child's Table — package solve's traversal driver owns the decision of
// when a child's Table is no longer needed and may be released.
//
// Grounded on original_source/decomp.cpp's introduceVertexNode,
// introduceEdge, forgetNode, and joinNode functions; semantics are ported
// directly, with the join-consistency enumeration replaced by decomp.Bag's
// precomputed TripleList rather than re-deriving it inline.
package transition
