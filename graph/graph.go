// SPDX-License-Identifier: MIT
// Package: meldheap/graph
//
// Package graph is a compact weighted adjacency list over integer vertices
// 0..n-1, the input format of the dijkstra and prim drivers.
//
// Vertices are dense ints so a driver can use a vertex id directly as the
// payload of a priority-queue element and index per-vertex slices with it.
// The vertex set is fixed at construction; only edges are added afterwards.
//
// Configuration (Option):
//
//   - WithDirected(): edges are one-way. By default graphs are undirected and
//     every edge is mirrored in both endpoints' adjacency.
//   - WithLoops(): permit self-loops; otherwise AddEdge(v, v, w) returns
//     ErrLoopNotAllowed.
//
// Parallel edges are always allowed; the random generators produce them and
// the shortest-path and spanning-tree drivers handle them naturally.
//
// A Graph is not safe for concurrent mutation. Concurrent readers are fine
// once construction is finished.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates AddEdge received a weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge is one weighted connection From -> To.
// In undirected graphs the same edge is reported from both endpoints, with
// From set to the vertex whose adjacency is being read.
type Edge struct {
	From   int
	To     int
	Weight int
}

// String renders the edge as "from-to:weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.From, e.To, e.Weight)
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a weighted adjacency list over vertices 0..n-1.
type Graph struct {
	directed   bool
	allowLoops bool

	adj   [][]Edge // adj[u] = edges leaving u (mirrored when undirected)
	edges []Edge   // every edge once, in insertion order
}

// New creates a graph with n isolated vertices.
// New panics if n is negative.
// Complexity: O(n).
func New(n int, opts ...Option) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative order %d", n))
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges, counting an undirected edge once.
func (g *Graph) Size() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddEdge adds an edge u -> v with weight w (and v -> u when undirected).
//
// Errors: ErrVertexOutOfRange, ErrNegativeWeight, ErrLoopNotAllowed.
// A failed call leaves the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v, w int) error {
	// 1) Validate endpoints.
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	// 2) Validate weight and loop policy.
	if w < 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}

	// 3) Record the edge, mirroring for undirected graphs.
	e := Edge{From: u, To: v, Weight: w}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], e)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	}

	return nil
}

// Neighbors returns the edges leaving u, in insertion order.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.check(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Edges returns a copy of every edge once, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether u is a vertex of g.
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < len(g.adj)
}

func (g *Graph) check(u int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, u, len(g.adj))
	}

	return nil
}
