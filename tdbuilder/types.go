package tdbuilder

import "github.com/katalvlaran/domset/decomp"

// BagSpec is the caller-facing description of one bag of a nice tree
// decomposition (spec.md §6): a stable id, a type tag, an optional parent
// id (nil only for the root), the bag's vertex list, and any edges
// introduced at this bag.
type BagSpec struct {
	ID       int
	Type     decomp.BagType
	Parent   *int
	Vertices []int
	Edges    []decomp.Edge
}
