package verify

// Path returns the path graph 1-2-...-n (n >= 1). Vertices are 1-indexed
// to match the vertex ids used throughout solve_test.go's hand-built
// decompositions.
func Path(n int) *Graph {
	g := NewGraph()
	g.AddVertex(1)
	for i := 1; i < n; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

// Cycle returns the n-vertex cycle 1-2-...-n-1 (n >= 3).
func Cycle(n int) *Graph {
	g := Path(n)
	g.AddEdge(n, 1)
	return g
}

// Star returns a star with center 1 and leaves 2..n (n >= 2).
func Star(n int) *Graph {
	g := NewGraph()
	g.AddVertex(1)
	for leaf := 2; leaf <= n; leaf++ {
		g.AddEdge(1, leaf)
	}
	return g
}

// DisjointEdges returns pairCount vertex-disjoint edges, numbered
// (1,2), (3,4), (5,6), ...
func DisjointEdges(pairCount int) *Graph {
	g := NewGraph()
	for i := 0; i < pairCount; i++ {
		g.AddEdge(2*i+1, 2*i+2)
	}
	return g
}
