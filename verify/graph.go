package verify

import (
	"sort"
	"sync"
)

// Graph is a small undirected, unweighted, int-vertex graph, guarded by a
// single RWMutex (core.Graph's separate vertex/edge locks are unneeded
// here: this type is only ever built once, then read concurrently by
// tests, never mutated and read at the same time).
type Graph struct {
	mu  sync.RWMutex
	adj map[int]map[int]struct{}
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddVertex registers v with no edges, if not already present.
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}
}

// AddEdge adds the undirected edge (u, v), registering both endpoints if
// absent. Self-loops and duplicate edges are no-ops.
func (g *Graph) AddEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[int]struct{})
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}
	if u == v {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
}

// Vertices returns the graph's vertex ids in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vs := make([]int, 0, len(g.adj))
	for v := range g.adj {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// Neighbors returns v's neighbor ids in ascending order.
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ns := make([]int, 0, len(g.adj[v]))
	for n := range g.adj[v] {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}
