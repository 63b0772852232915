package solve_test

import "github.com/katalvlaran/domset/decomp"

// buildIsolatedVertex returns the decomposition for a single vertex with no
// edges: root -> Introduce{1} -> Leaf{}.
//
// The introduced vertex's own domination requirement is never resolved by
// an introduce-edge step (there is none) and it is never forgotten by a
// dedicated Forget bag either, so solve.Solve's root readout treats it as
// implicitly forgotten, excluding its free Grey bookkeeping value the same
// way transition.Forget would, reporting the graph-theoretic domination
// number of 1.
func buildIsolatedVertex() *decomp.Decomposition {
	s := newScenario()
	leaf := s.bag(2, decomp.Leaf, nil, nil)
	v1 := s.bag(1, decomp.Introduce, []int{1}, nil)
	root := s.bag(0, decomp.Forget, nil, nil)
	link(v1, leaf)
	link(root, v1)
	return s.decomposition(root)
}

// buildSingleEdge returns the decomposition for two vertices joined by one
// edge: root -> Forget{2} -> Introduce{1,2},edge(1,2) -> Introduce{1} -> Leaf{}.
func buildSingleEdge() *decomp.Decomposition {
	s := newScenario()
	leaf := s.bag(4, decomp.Leaf, nil, nil)
	v1 := s.bag(3, decomp.Introduce, []int{1}, nil)
	v12 := s.bag(2, decomp.Introduce, []int{1, 2}, []decomp.Edge{{U: 1, V: 2}})
	forgot1 := s.bag(1, decomp.Forget, []int{2}, nil)
	root := s.bag(0, decomp.Forget, nil, nil)

	link(v1, leaf)
	link(v12, v1)
	link(forgot1, v12)
	link(root, forgot1)
	return s.decomposition(root)
}

// buildPath4 returns the decomposition for the path 1-2-3-4 (edges (1,2),
// (2,3), (3,4)), built as a single chain that carries exactly the vertices
// still needed for a future edge.
func buildPath4() *decomp.Decomposition {
	s := newScenario()
	leaf := s.bag(100, decomp.Leaf, nil, nil)
	a := s.bag(101, decomp.Introduce, []int{1}, nil)
	b := s.bag(102, decomp.Introduce, []int{1, 2}, []decomp.Edge{{U: 1, V: 2}})
	c := s.bag(103, decomp.Forget, []int{2}, nil)
	d := s.bag(104, decomp.Introduce, []int{2, 3}, []decomp.Edge{{U: 2, V: 3}})
	e := s.bag(105, decomp.Forget, []int{3}, nil)
	f := s.bag(106, decomp.Introduce, []int{3, 4}, []decomp.Edge{{U: 3, V: 4}})
	g := s.bag(107, decomp.Forget, []int{4}, nil)
	root := s.bag(0, decomp.Forget, nil, nil)

	link(a, leaf)
	link(b, a)
	link(c, b)
	link(d, c)
	link(e, d)
	link(f, e)
	link(g, f)
	link(root, g)
	return s.decomposition(root)
}

// buildCycle5 returns the decomposition for the 5-cycle 1-2-3-4-5-1, built
// by keeping vertex 1 in the bag across the whole traversal so the closing
// edge (5,1) can be introduced once vertex 5 arrives.
func buildCycle5() *decomp.Decomposition {
	s := newScenario()
	leaf := s.bag(200, decomp.Leaf, nil, nil)
	a := s.bag(201, decomp.Introduce, []int{1}, nil)
	b := s.bag(202, decomp.Introduce, []int{1, 2}, []decomp.Edge{{U: 1, V: 2}})
	c := s.bag(203, decomp.Introduce, []int{1, 2, 3}, []decomp.Edge{{U: 2, V: 3}})
	d := s.bag(204, decomp.Forget, []int{1, 3}, nil)
	e := s.bag(205, decomp.Introduce, []int{1, 3, 4}, []decomp.Edge{{U: 3, V: 4}})
	f := s.bag(206, decomp.Forget, []int{1, 4}, nil)
	g := s.bag(207, decomp.Introduce, []int{1, 4, 5}, []decomp.Edge{{U: 4, V: 5}, {U: 5, V: 1}})
	h := s.bag(208, decomp.Forget, []int{1, 5}, nil)
	i := s.bag(209, decomp.Forget, []int{5}, nil)
	root := s.bag(0, decomp.Forget, nil, nil)

	link(a, leaf)
	link(b, a)
	link(c, b)
	link(d, c)
	link(e, d)
	link(f, e)
	link(g, f)
	link(h, g)
	link(i, h)
	link(root, i)
	return s.decomposition(root)
}

// buildStar returns the decomposition for a star with center 1 and leaves
// 2,3,4,5 (edges (1,2),(1,3),(1,4),(1,5)), keeping the center alive while
// each leaf is introduced, edged, and immediately forgotten.
func buildStar() *decomp.Decomposition {
	s := newScenario()
	leaf := s.bag(300, decomp.Leaf, nil, nil)
	a := s.bag(301, decomp.Introduce, []int{1}, nil)
	b := s.bag(302, decomp.Introduce, []int{1, 2}, []decomp.Edge{{U: 1, V: 2}})
	c := s.bag(303, decomp.Forget, []int{1}, nil)
	d := s.bag(304, decomp.Introduce, []int{1, 3}, []decomp.Edge{{U: 1, V: 3}})
	e := s.bag(305, decomp.Forget, []int{1}, nil)
	f := s.bag(306, decomp.Introduce, []int{1, 4}, []decomp.Edge{{U: 1, V: 4}})
	g := s.bag(307, decomp.Forget, []int{1}, nil)
	h := s.bag(308, decomp.Introduce, []int{1, 5}, []decomp.Edge{{U: 1, V: 5}})
	i := s.bag(309, decomp.Forget, []int{1}, nil)
	root := s.bag(0, decomp.Forget, nil, nil)

	link(a, leaf)
	link(b, a)
	link(c, b)
	link(d, c)
	link(e, d)
	link(f, e)
	link(g, f)
	link(h, g)
	link(i, h)
	link(root, i)
	return s.decomposition(root)
}

// buildTwoDisconnectedEdges returns the decomposition for two separate
// single-edge components, {1,2} and {3,4}, joined at a shared bag over the
// single real vertex 3 (already fully resolved against its own edge to 4
// before the join, so its three color branches carry equal, correct cost
// rather than the introduce-time bookkeeping value).
func buildTwoDisconnectedEdges() *decomp.Decomposition {
	s := newScenario()

	// Component {1,2}, reduced fully to width 0.
	leaf1 := s.bag(400, decomp.Leaf, nil, nil)
	a1 := s.bag(401, decomp.Introduce, []int{1}, nil)
	b1 := s.bag(402, decomp.Introduce, []int{1, 2}, []decomp.Edge{{U: 1, V: 2}})
	c1 := s.bag(403, decomp.Forget, []int{2}, nil)
	d1 := s.bag(404, decomp.Forget, nil, nil)
	link(a1, leaf1)
	link(b1, a1)
	link(c1, b1)
	link(d1, c1)

	// Re-introduce vertex 3 as a carrier on the {1,2} side so it can join
	// against component {3,4}'s bag over {3}.
	carrier := s.bag(405, decomp.Introduce, []int{3}, nil)
	link(carrier, d1)

	// Component {3,4}, keeping vertex 3 alive.
	leaf2 := s.bag(410, decomp.Leaf, nil, nil)
	a2 := s.bag(411, decomp.Introduce, []int{3}, nil)
	b2 := s.bag(412, decomp.Introduce, []int{3, 4}, []decomp.Edge{{U: 3, V: 4}})
	c2 := s.bag(413, decomp.Forget, []int{3}, nil)
	link(a2, leaf2)
	link(b2, a2)
	link(c2, b2)

	join := s.bag(420, decomp.Join, []int{3}, nil)
	link2(join, carrier, c2)

	root := s.bag(0, decomp.Forget, nil, nil)
	link(root, join)
	return s.decomposition(root)
}
