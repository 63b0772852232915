package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/domset/color"
)

// Sentinel errors for the coloring package.
var (
	// ErrVertexNotInOrder indicates an operation referenced a vertex that
	// is not part of the bag's canonical vertex order.
	ErrVertexNotInOrder = errors.New("coloring: vertex not present in bag's vertex order")

	// ErrOrderMismatch indicates two Colorings built over different
	// VertexOrders were compared or combined; such a comparison is
	// meaningless (spec.md: colorings are only compared within one bag).
	ErrOrderMismatch = errors.New("coloring: colorings belong to different vertex orders")
)

// VertexOrder is the canonical, fixed ordering of a bag's vertices. Every
// Coloring produced over the same bag shares one VertexOrder instance, so
// position i always refers to the same vertex across all of that bag's
// Colorings (spec.md §4.2's "internal representation is free" clause).
type VertexOrder struct {
	vertices []int
	index    map[int]int // vertex -> position
}

// NewVertexOrder fixes a canonical order for vertices. The input order is
// preserved as given; neither this package nor its callers sort it.
func NewVertexOrder(vertices []int) *VertexOrder {
	idx := make(map[int]int, len(vertices))
	cp := make([]int, len(vertices))
	copy(cp, vertices)
	for i, v := range cp {
		idx[v] = i
	}
	return &VertexOrder{vertices: cp, index: idx}
}

// Vertices returns the canonical vertex order (read-only; do not mutate).
func (o *VertexOrder) Vertices() []int { return o.vertices }

// Len returns the number of vertices in the order (the bag's width k).
func (o *VertexOrder) Len() int { return len(o.vertices) }

// PositionOf returns the index of vertex within the order, and whether it
// is present at all.
func (o *VertexOrder) PositionOf(vertex int) (int, bool) {
	p, ok := o.index[vertex]
	return p, ok
}

// Coloring is an assignment of color.Color to every vertex in a
// VertexOrder: an unordered mapping vertex -> color, represented internally
// as a position-indexed array so hashing and equality never need to
// re-derive a canonical order (spec.md §4.2, §9 "Interning versus
// structural comparison").
type Coloring struct {
	order  *VertexOrder
	colors []color.Color
}

// New allocates a Coloring over order with every vertex defaulted to
// color.White. Callers then Insert the colors they need.
func New(order *VertexOrder) *Coloring {
	return &Coloring{
		order:  order,
		colors: make([]color.Color, order.Len()),
	}
}

// Order returns the Coloring's VertexOrder.
func (c *Coloring) Order() *VertexOrder { return c.order }

// Insert assigns pair's color to pair's vertex. Returns ErrVertexNotInOrder
// if the vertex is not part of this Coloring's VertexOrder.
func (c *Coloring) Insert(pair *color.ColorPair) error {
	pos, ok := c.order.PositionOf(pair.Vertex)
	if !ok {
		return fmt.Errorf("%w: vertex %d", ErrVertexNotInOrder, pair.Vertex)
	}
	c.colors[pos] = pair.Color
	return nil
}

// Set assigns c to vertex directly, without going through a color.ColorPair.
// Equivalent to Insert but avoids allocating a pair when the caller has not
// interned one; used heavily inside the transition operators' inner loops.
func (c *Coloring) Set(vertex int, col color.Color) error {
	pos, ok := c.order.PositionOf(vertex)
	if !ok {
		return fmt.Errorf("%w: vertex %d", ErrVertexNotInOrder, vertex)
	}
	c.colors[pos] = col
	return nil
}

// At returns the color assigned to the vertex at position pos in the
// canonical order.
func (c *Coloring) At(pos int) color.Color { return c.colors[pos] }

// ColorOf returns the color assigned to vertex, and whether vertex belongs
// to this Coloring's VertexOrder at all.
func (c *Coloring) ColorOf(vertex int) (color.Color, bool) {
	pos, ok := c.order.PositionOf(vertex)
	if !ok {
		return 0, false
	}
	return c.colors[pos], true
}

// Has reports whether this Coloring assigns pair.Color to pair.Vertex —
// spec.md §4.2's "test for presence of a specific ColorPair".
func (c *Coloring) Has(pair *color.ColorPair) bool {
	col, ok := c.ColorOf(pair.Vertex)
	return ok && col == pair.Color
}

// Each iterates every (vertex, color) entry of the Coloring in canonical
// vertex order. fn must not mutate the Coloring.
func (c *Coloring) Each(fn func(vertex int, col color.Color)) {
	for i, v := range c.order.vertices {
		fn(v, c.colors[i])
	}
}

// Clone returns an independent copy of c sharing the same VertexOrder.
func (c *Coloring) Clone() *Coloring {
	cp := make([]color.Color, len(c.colors))
	copy(cp, c.colors)
	return &Coloring{order: c.order, colors: cp}
}

// Key returns a comparable, hashable representation of the Coloring
// suitable for use as a map key (decomp.Table's BagStateTable). Because
// position encodes vertex identity, two Colorings over the same
// VertexOrder with identical vertex->color assignments always produce the
// same Key, regardless of the order in which their entries were Inserted —
// this is spec.md P6 (order-invariant equality) by construction.
func (c *Coloring) Key() string {
	buf := make([]byte, len(c.colors))
	for i, col := range c.colors {
		buf[i] = byte(col)
	}
	return string(buf)
}

// Hash returns the commutative (order-independent) combination of each
// entry's hash, per spec.md §4.2: "the commutative combination of the
// hashes of its members (e.g. XOR-sum over per-entry hashes)".
func (c *Coloring) Hash() uint64 {
	var h uint64
	for i, col := range c.colors {
		h ^= entryHash(c.order.vertices[i], col)
	}
	return h
}

// Equal reports whether c and other assign the same color to every vertex.
// Colorings built over different VertexOrders of differing length are
// never equal; same-length orders are compared position-wise (spec.md P6).
func (c *Coloring) Equal(other *Coloring) bool {
	if len(c.colors) != len(other.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != other.colors[i] {
			return false
		}
	}
	return true
}

// FromKey reconstructs a Coloring over order from a key produced by Key().
// The key must have been produced for the same (or an identically-shaped)
// VertexOrder; callers within this module always pass back a key obtained
// from a Coloring over the same order.
func FromKey(order *VertexOrder, key string) (*Coloring, error) {
	if len(key) != order.Len() {
		return nil, fmt.Errorf("coloring: key length %d does not match order length %d", len(key), order.Len())
	}
	colors := make([]color.Color, len(key))
	for i := 0; i < len(key); i++ {
		colors[i] = color.Color(key[i])
	}
	return &Coloring{order: order, colors: colors}, nil
}

func entryHash(vertex int, col color.Color) uint64 {
	// FNV-1a style mix, cheap and adequate: this is an internal hash for a
	// Go map key we already encode structurally via Key(); Hash() exists to
	// satisfy spec.md's explicit hash contract (P6) for callers that want a
	// numeric digest independent of Key()'s string representation.
	h := uint64(vertex)*1099511628211 ^ uint64(col)
	return h
}
