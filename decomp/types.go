package decomp

import (
	"math"

	"github.com/katalvlaran/domset/color"
	"github.com/katalvlaran/domset/coloring"
)

// Infinity represents an infeasible partial solution (spec.md §3: "cost is
// either a non-negative integer ... or a sentinel ∞"). All arithmetic
// helpers in package transition saturate through this sentinel rather than
// relying on integer overflow (spec.md §7, OverflowSentinel).
const Infinity = math.MaxInt

// BagType identifies which of the four nice-tree-decomposition operations a
// Bag performs (spec.md §3, glossary "Nice tree decomposition").
type BagType uint8

const (
	// Leaf bags have no children and, in strict form, an empty vertex set
	// (spec.md §3, §4.4); a single-vertex Leaf is also accepted as a
	// compatibility shim (see transition.Leaf). They never carry
	// introduced edges.
	Leaf BagType = iota

	// Introduce bags have one child whose vertex set is this bag's set
	// minus exactly one vertex.
	Introduce

	// Forget bags have one child whose vertex set is this bag's set plus
	// exactly one vertex.
	Forget

	// Join bags have two children, each with the same vertex set as this
	// bag.
	Join
)

// String renders a BagType for diagnostics and log lines.
func (t BagType) String() string {
	switch t {
	case Leaf:
		return "Leaf"
	case Introduce:
		return "Introduce"
	case Forget:
		return "Forget"
	case Join:
		return "Join"
	default:
		return "Unknown"
	}
}

// Edge is an unordered pair of vertices, both required to be present in the
// bag that introduces them (spec.md §3).
type Edge struct {
	U, V int
}

// Table is the BagStateTable of spec.md §3: a mapping from a Coloring's key
// (coloring.Coloring.Key) to a cost, either a non-negative integer or
// Infinity. After a bag's primary transition, Table always holds exactly
// 3^k entries where k is the bag's width (spec.md P1).
type Table map[string]int

// Get returns the cost stored for a Coloring, or Infinity if the Coloring
// has no entry (which should not happen for any Coloring actually produced
// over this bag's VertexOrder; spec.md P1 guarantees full coverage).
func (t Table) Get(c *coloring.Coloring) int {
	v, ok := t[c.Key()]
	if !ok {
		return Infinity
	}
	return v
}

// Set stores the cost for a Coloring.
func (t Table) Set(c *coloring.Coloring, cost int) {
	t[c.Key()] = cost
}

// ConsistentTriple is one pointwise-consistent (parent, left, right) triple
// of Colorings over the same bag vertex set, per spec.md §3's consistency
// table. Only populated for Join bags.
type ConsistentTriple struct {
	Parent *coloring.Coloring
	Left   *coloring.Coloring
	Right  *coloring.Coloring
}

// TripleList is the ConsistentTripleList of spec.md §3: exactly 4^k entries
// for a Join bag of width k.
type TripleList []ConsistentTriple

// Bag is one node of a nice tree decomposition, after validation and
// linking (spec.md §3's "Bag" type). Bags are created once by package
// tdbuilder and never mutated structurally thereafter. tdbuilder also
// allocates Table (and, for Join bags, Triples); during traversal (package
// solve) only Table's costs are written, and both are released once the
// parent has consumed them.
type Bag struct {
	ID     int
	Type   BagType
	Parent *Bag // nil only for the root
	Order  *coloring.VertexOrder
	Edges  []Edge

	Child1 *Bag
	Child2 *Bag

	Table   Table
	Triples TripleList
}

// Vertices returns the bag's vertex list in canonical order.
func (b *Bag) Vertices() []int { return b.Order.Vertices() }

// Width returns the number of vertices in the bag (k in spec.md's 3^k /
// 4^k sizing).
func (b *Bag) Width() int { return b.Order.Len() }

// IsRoot reports whether this bag is the decomposition's root (id 0, no
// parent).
func (b *Bag) IsRoot() bool { return b.Parent == nil }

// Children returns the bag's children as a slice (length 0, 1, or 2) for
// callers that want to iterate uniformly.
func (b *Bag) Children() []*Bag {
	var children []*Bag
	if b.Child1 != nil {
		children = append(children, b.Child1)
	}
	if b.Child2 != nil {
		children = append(children, b.Child2)
	}
	return children
}

// InitTable allocates Table with all 3^k Colorings over the bag's vertex
// set as keys, each mapped to Infinity, per spec.md §4.3. in is used to
// canonicalize the (vertex, color) pairs inserted into each enumerated
// Coloring.
func (b *Bag) InitTable(in *color.Interner) {
	k := b.Width()
	b.Table = make(Table, pow3(k))
	vertices := b.Vertices()

	assignment := make([]color.Color, k)
	var enumerate func(pos int)
	enumerate = func(pos int) {
		if pos == k {
			c := coloring.New(b.Order)
			for i, col := range assignment {
				_ = c.Insert(in.Intern(vertices[i], col))
			}
			b.Table.Set(c, Infinity)
			return
		}
		for _, col := range color.All {
			assignment[pos] = col
			enumerate(pos + 1)
		}
	}
	enumerate(0)
}

// consistencyRows is the pointwise consistency table of spec.md §3: each
// row is (parent, left, right) for one vertex.
var consistencyRows = [4][3]color.Color{
	{color.Black, color.Black, color.Black},
	{color.White, color.White, color.Grey},
	{color.White, color.Grey, color.White},
	{color.Grey, color.Grey, color.Grey},
}

// InitTriples populates Triples with the 4^k pointwise-consistent triples
// of spec.md §3/§4.3 by taking the Cartesian product, across the bag's
// vertices, of the four consistency rows. Only meaningful for Join bags,
// but callable on any bag of the same vertex set as its would-be children.
func (b *Bag) InitTriples(in *color.Interner) {
	k := b.Width()
	b.Triples = make(TripleList, 0, pow4(k))
	vertices := b.Vertices()

	parentAssign := make([]color.Color, k)
	leftAssign := make([]color.Color, k)
	rightAssign := make([]color.Color, k)

	var enumerate func(pos int)
	enumerate = func(pos int) {
		if pos == k {
			parent := coloring.New(b.Order)
			left := coloring.New(b.Order)
			right := coloring.New(b.Order)
			for i := 0; i < k; i++ {
				_ = parent.Insert(in.Intern(vertices[i], parentAssign[i]))
				_ = left.Insert(in.Intern(vertices[i], leftAssign[i]))
				_ = right.Insert(in.Intern(vertices[i], rightAssign[i]))
			}
			b.Triples = append(b.Triples, ConsistentTriple{Parent: parent, Left: left, Right: right})
			return
		}
		for _, row := range consistencyRows {
			parentAssign[pos], leftAssign[pos], rightAssign[pos] = row[0], row[1], row[2]
			enumerate(pos + 1)
		}
	}
	enumerate(0)
}

func pow3(k int) int {
	p := 1
	for i := 0; i < k; i++ {
		p *= 3
	}
	return p
}

func pow4(k int) int {
	p := 1
	for i := 0; i < k; i++ {
		p *= 4
	}
	return p
}

// Decomposition owns every Bag of a nice tree decomposition, indexed by id,
// plus the resolved root (always id 0, per spec.md §6).
type Decomposition struct {
	Bags map[int]*Bag
	Root *Bag
}
