package solve_test

import (
	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// scenario accumulates bags sharing one color.Interner, for hand-building
// small nice tree decompositions in tests without going through tdbuilder.
type scenario struct {
	in   *color.Interner
	bags map[int]*decomp.Bag
}

func newScenario() *scenario {
	return &scenario{in: color.NewInterner(), bags: make(map[int]*decomp.Bag)}
}

// bag constructs and registers a bag with the given id, type, vertex list,
// and introduced edges, initializing its Table (and, for Join bags, its
// Triples) against the scenario's shared interner.
func (s *scenario) bag(id int, bagType decomp.BagType, vertices []int, edges []decomp.Edge) *decomp.Bag {
	b := &decomp.Bag{ID: id, Type: bagType, Order: coloring.NewVertexOrder(vertices), Edges: edges}
	b.InitTable(s.in)
	if bagType == decomp.Join {
		b.InitTriples(s.in)
	}
	s.bags[id] = b
	return b
}

// link attaches child as parent's only child.
func link(parent, child *decomp.Bag) {
	parent.Child1 = child
	child.Parent = parent
}

// link2 attaches left and right as parent's two children.
func link2(parent, left, right *decomp.Bag) {
	parent.Child1 = left
	parent.Child2 = right
	left.Parent = parent
	right.Parent = parent
}

// decomposition wraps root into a *decomp.Decomposition for Solve.
func (s *scenario) decomposition(root *decomp.Bag) *decomp.Decomposition {
	return &decomp.Decomposition{Bags: s.bags, Root: root}
}
