package transition_test

import (
	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
	"github.com/katalvlaran/domset/decomp"
)

// newBag builds a decomp.Bag of the given type and vertices, with its
// Table (and, for Join bags, Triples) initialized.
func newBag(id int, bagType decomp.BagType, vertices []int, in *color.Interner) *decomp.Bag {
	b := &decomp.Bag{ID: id, Type: bagType, Order: coloring.NewVertexOrder(vertices)}
	b.InitTable(in)
	if bagType == decomp.Join {
		b.InitTriples(in)
	}
	return b
}

// setCost sets the cost of the coloring described by assignments (vertex ->
// color pairs) within bag's Table.
func setCost(bag *decomp.Bag, in *color.Interner, assignments map[int]color.Color, cost int) {
	c := coloring.New(bag.Order)
	for v, col := range assignments {
		_ = c.Insert(in.Intern(v, col))
	}
	bag.Table.Set(c, cost)
}

// costOf reads the cost of the coloring described by assignments within
// bag's Table.
func costOf(bag *decomp.Bag, in *color.Interner, assignments map[int]color.Color) int {
	c := coloring.New(bag.Order)
	for v, col := range assignments {
		_ = c.Insert(in.Intern(v, col))
	}
	return bag.Table.Get(c)
}
