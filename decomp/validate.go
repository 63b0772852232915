package decomp

import "fmt"

// vertexSet is a tiny helper for the set-shape checks below; decompositions
// are small enough (bag widths bounded by treewidth+1) that a map is not a
// performance concern here.
func vertexSet(vs []int) map[int]struct{} {
	s := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// ValidateIntroduce checks that child.Vertices() equals parent.Vertices()
// minus exactly one vertex (spec.md §3: "Introduce bags have one child
// whose vertex set is the bag's set minus exactly one vertex").
// Returns the introduced vertex on success.
func ValidateIntroduce(parent, child *Bag) (int, error) {
	if parent.Width() != child.Width()+1 {
		return 0, fmt.Errorf("%w: introduce bag %d has width %d, child %d has width %d",
			ErrChildVertexSetMismatch, parent.ID, parent.Width(), child.ID, child.Width())
	}
	childSet := vertexSet(child.Vertices())
	introduced := -1
	for _, v := range parent.Vertices() {
		if _, ok := childSet[v]; !ok {
			if introduced != -1 {
				return 0, fmt.Errorf("%w: introduce bag %d differs from child %d by more than one vertex",
					ErrChildVertexSetMismatch, parent.ID, child.ID)
			}
			introduced = v
		}
	}
	if introduced == -1 {
		return 0, fmt.Errorf("%w: introduce bag %d does not add any vertex over child %d",
			ErrChildVertexSetMismatch, parent.ID, child.ID)
	}
	return introduced, nil
}

// ValidateForget checks that child.Vertices() equals parent.Vertices() plus
// exactly one vertex (spec.md §3: "Forget bags have one child whose vertex
// set is the bag's set plus exactly one vertex"). Returns the forgotten
// vertex on success.
func ValidateForget(parent, child *Bag) (int, error) {
	if child.Width() != parent.Width()+1 {
		return 0, fmt.Errorf("%w: forget bag %d has width %d, child %d has width %d",
			ErrChildVertexSetMismatch, parent.ID, parent.Width(), child.ID, child.Width())
	}
	parentSet := vertexSet(parent.Vertices())
	forgotten := -1
	for _, v := range child.Vertices() {
		if _, ok := parentSet[v]; !ok {
			if forgotten != -1 {
				return 0, fmt.Errorf("%w: forget bag %d differs from child %d by more than one vertex",
					ErrChildVertexSetMismatch, parent.ID, child.ID)
			}
			forgotten = v
		}
	}
	if forgotten == -1 {
		return 0, fmt.Errorf("%w: forget bag %d does not drop any vertex relative to child %d",
			ErrChildVertexSetMismatch, parent.ID, child.ID)
	}
	return forgotten, nil
}

// ValidateJoin checks that left and right both carry exactly parent's
// vertex set (spec.md §3: "Join bags have two children, each with the same
// vertex set as the bag").
func ValidateJoin(parent, left, right *Bag) error {
	if parent.Width() != left.Width() || parent.Width() != right.Width() {
		return fmt.Errorf("%w: join bag %d width %d must match both children (%d, %d)",
			ErrChildVertexSetMismatch, parent.ID, parent.Width(), left.Width(), right.Width())
	}
	parentSet := vertexSet(parent.Vertices())
	for _, v := range left.Vertices() {
		if _, ok := parentSet[v]; !ok {
			return fmt.Errorf("%w: join bag %d left child %d has foreign vertex %d",
				ErrChildVertexSetMismatch, parent.ID, left.ID, v)
		}
	}
	for _, v := range right.Vertices() {
		if _, ok := parentSet[v]; !ok {
			return fmt.Errorf("%w: join bag %d right child %d has foreign vertex %d",
				ErrChildVertexSetMismatch, parent.ID, right.ID, v)
		}
	}
	if len(left.Vertices()) != parent.Width() || len(right.Vertices()) != parent.Width() {
		return fmt.Errorf("%w: join bag %d children must have exactly the parent's vertex count",
			ErrChildVertexSetMismatch, parent.ID)
	}
	return nil
}

// ValidateEdges checks that every introduced edge on b connects two
// vertices that are both present in b (spec.md §3: "Introduced edges on a
// bag connect vertices both present in that bag"), and that Leaf bags
// declare none at all.
func ValidateEdges(b *Bag) error {
	if b.Type == Leaf && len(b.Edges) > 0 {
		return fmt.Errorf("%w: bag %d", ErrEdgesOnLeaf, b.ID)
	}
	set := vertexSet(b.Vertices())
	for _, e := range b.Edges {
		if _, ok := set[e.U]; !ok {
			return fmt.Errorf("%w: bag %d edge (%d,%d), endpoint %d", ErrEdgeEndpointNotInBag, b.ID, e.U, e.V, e.U)
		}
		if _, ok := set[e.V]; !ok {
			return fmt.Errorf("%w: bag %d edge (%d,%d), endpoint %d", ErrEdgeEndpointNotInBag, b.ID, e.U, e.V, e.V)
		}
	}
	return nil
}

// ValidateRoot checks spec.md §3's root invariants: id 0, no parent, empty
// vertex list, and exactly one child whose vertex set has size one
// (spec.md §6).
func ValidateRoot(root *Bag) error {
	if root.ID != 0 {
		return fmt.Errorf("%w: root must have id 0, got %d", ErrInvalidRoot, root.ID)
	}
	if root.Parent != nil {
		return fmt.Errorf("%w: root must not have a parent", ErrInvalidRoot)
	}
	if root.Width() != 0 {
		return fmt.Errorf("%w: root must have an empty vertex list, got width %d", ErrInvalidRoot, root.Width())
	}
	children := root.Children()
	if len(children) != 1 {
		return fmt.Errorf("%w: root must have exactly one child, got %d", ErrInvalidRoot, len(children))
	}
	if children[0].Width() != 1 {
		return fmt.Errorf("%w: root's child must have exactly one vertex, got %d", ErrInvalidRoot, children[0].Width())
	}
	return nil
}
