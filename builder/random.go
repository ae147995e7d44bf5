// SPDX-License-Identifier: MIT
// Package: meldheap/builder
//
// random.go - RandomEdges and RandomConnected constructors.
//
// Contract:
//   - Parameters are validated before any draw (zero side effects on error).
//   - Vertices are 0..n-1; weights are uniform in [1, maxWeight].
//   - Self-loops are never generated.
//
// Complexity:
//   - RandomEdges: O(n + m) time, O(n + m) space.
//   - RandomConnected: O(n + m) expected time (rejection of loops only).

package builder

import (
	"fmt"

	"github.com/katalvlaran/meldheap/graph"
)

const (
	methodRandomEdges     = "RandomEdges"
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 1
)

// RandomEdges builds a graph over n vertices by drawing m ordered pairs
// (u, v) uniformly and adding each non-loop pair with a random weight.
func RandomEdges(n, m int, opts ...Option) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters.
	if err := cfg.validate(methodRandomEdges, n, m); err != nil {
		return nil, err
	}

	// 2) Draw m attempts; the weight is drawn even for skipped loops so that
	//    the sequence of kept edges depends only on the seed.
	g := cfg.newGraph(n)
	var u, v, w int
	for i := 0; i < m; i++ {
		u = cfg.rng.Intn(n)
		v = cfg.rng.Intn(n)
		w = cfg.weight()
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d,%d): %w", methodRandomEdges, u, v, w, err)
		}
	}

	return g, nil
}

// RandomConnected builds a graph over n vertices with exactly m edges whose
// first n-1 edges form the chain 0-1-...-(n-1). Every vertex is therefore
// reachable from vertex 0 (in both the directed and undirected case).
func RandomConnected(n, m int, opts ...Option) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters; the chain needs n-1 edges and extra edges
	//    need two distinct endpoints.
	if err := cfg.validate(methodRandomConnected, n, m); err != nil {
		return nil, err
	}
	if m < n-1 {
		return nil, fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewEdges)
	}
	if n < 2 && m > 0 {
		return nil, fmt.Errorf("%s: n=%d cannot hold %d loop-free edges: %w",
			methodRandomConnected, n, m, ErrTooFewVertices)
	}

	g := cfg.newGraph(n)

	// 2) Spanning chain.
	for v := 1; v < n; v++ {
		w := cfg.weight()
		if err := g.AddEdge(v-1, v, w); err != nil {
			return nil, fmt.Errorf("%s: chain AddEdge(%d,%d,%d): %w", methodRandomConnected, v-1, v, w, err)
		}
	}

	// 3) Extra random edges, rejecting loops.
	var u, v, w int
	for g.Size() < m {
		u = cfg.rng.Intn(n)
		v = cfg.rng.Intn(n)
		if u == v {
			continue
		}
		w = cfg.weight()
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d,%d): %w", methodRandomConnected, u, v, w, err)
		}
	}

	return g, nil
}

// validate checks the shared preconditions in priority order:
// size, edge count, weight range, random source.
func (c builderConfig) validate(method string, n, m int) error {
	if n < minRandomVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomVertices, ErrTooFewVertices)
	}
	if m < 0 {
		return fmt.Errorf("%s: m=%d: %w", method, m, ErrTooFewEdges)
	}
	if c.maxWeight < 1 {
		return fmt.Errorf("%s: maxWeight=%d: %w", method, c.maxWeight, ErrInvalidWeight)
	}
	if c.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

func (c builderConfig) newGraph(n int) *graph.Graph {
	if c.directed {
		return graph.New(n, graph.WithDirected())
	}

	return graph.New(n)
}

// weight draws uniformly from [1, maxWeight].
func (c builderConfig) weight() int {
	return c.rng.Intn(c.maxWeight) + 1
}
