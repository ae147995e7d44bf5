// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, small known graphs, MaxDistance,
// unreachable vertices, and agreement of both heap variants with a
// Bellman-Ford reference on random graphs.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/builder"
	"github.com/katalvlaran/meldheap/dijkstra"
	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pairing"
	"github.com/katalvlaran/meldheap/pq"
)

// queues lists every heap variant the driver must work with.
var queues = map[string]pq.Factory{
	"binomial": binomial.Factory(),
	"pairing":  pairing.Factory(),
}

// mustGraph builds a graph from (u, v, w) triples.
func mustGraph(t *testing.T, n int, directed bool, edges [][3]int) *graph.Graph {
	t.Helper()
	var g *graph.Graph
	if directed {
		g = graph.New(n, graph.WithDirected())
	} else {
		g = graph.New(n)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}

	return g
}

// bellmanFord is the O(VE) reference used to cross-check distances.
func bellmanFord(g *graph.Graph, src int) []int {
	dist := make([]int, g.Order())
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[src] = 0
	for i := 0; i < g.Order(); i++ {
		changed := false
		for u := 0; u < g.Order(); u++ {
			if dist[u] == dijkstra.Infinity {
				continue
			}
			nbrs, _ := g.Neighbors(u)
			for _, e := range nbrs {
				if dist[u]+e.Weight < dist[e.To] {
					dist[e.To] = dist[u] + e.Weight
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_NegativeWeightsStopAtTheGraph(t *testing.T) {
	g := graph.New(2, graph.WithDirected())
	require.ErrorIs(t, g.AddEdge(0, 1, -3), dijkstra.ErrNegativeWeight)
	assert.Zero(t, g.Size(), "rejected edge is not stored")

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, dijkstra.Infinity}, res.Dist)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := graph.New(3)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source(3))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source(-1))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Dijkstra(graph.New(0))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithQueue(nil) })
}

// ------------------------------------------------------------------------
// 2. Known graphs, every heap variant
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0-1(1), 1-2(2), 0-2(5): shortest 0->2 goes through 1.
	g := mustGraph(t, 3, false, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})
	for name, f := range queues {
		t.Run(name, func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, dijkstra.WithQueue(f))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 3}, res.Dist)
			assert.Equal(t, []int{dijkstra.NoVertex, 0, 1}, res.Prev)

			path, err := res.Path(2)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, path)
		})
	}
}

func TestDijkstra_DirectedMedium(t *testing.T) {
	// A=0 B=1 C=2 D=3: A->B 2, A->C 1, C->B 1, B->D 3, C->D 5.
	g := mustGraph(t, 4, true, [][3]int{{0, 1, 2}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}, {2, 3, 5}})
	for name, f := range queues {
		t.Run(name, func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, dijkstra.WithQueue(f))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 2, 1, 5}, res.Dist)
			assert.Equal(t, 1, res.Prev[3])

			// Directed: nothing reaches 0 from 3.
			res, err = dijkstra.Dijkstra(g, dijkstra.Source(3), dijkstra.WithQueue(f))
			require.NoError(t, err)
			assert.Equal(t, 0, res.Dist[3])
			assert.False(t, res.Reachable(0))
		})
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := mustGraph(t, 4, false, [][3]int{{0, 1, 4}})
	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
	assert.Equal(t, dijkstra.NoVertex, res.Prev[2])

	_, err = res.Path(2)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = res.Path(9)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	path, err := res.Path(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Path 0-1-2-3 with unit weights; cap at 2 leaves 3 unexplored.
	g := mustGraph(t, 4, false, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})
	res, err := dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, dijkstra.Infinity}, res.Dist)
}

func TestDijkstra_ZeroWeightsAndParallelEdges(t *testing.T) {
	g := mustGraph(t, 3, false, [][3]int{{0, 1, 7}, {0, 1, 0}, {1, 2, 0}})
	for name, f := range queues {
		t.Run(name, func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, dijkstra.WithQueue(f))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 0, 0}, res.Dist)
		})
	}
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := mustGraph(t, 3, true, [][3]int{{0, 1, math.MaxInt - 1}, {1, 2, 5}})
	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, res.Dist[1])
	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
}

// ------------------------------------------------------------------------
// 3. Random graphs: heaps agree with each other and with Bellman-Ford
// ------------------------------------------------------------------------

func TestDijkstra_RandomAgreesWithBellmanFord(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g, err := builder.RandomEdges(120, 400, builder.WithSeed(seed))
		require.NoError(t, err)
		want := bellmanFord(g, 0)

		for name, f := range queues {
			res, err := dijkstra.Dijkstra(g, dijkstra.WithQueue(f))
			require.NoError(t, err, "seed=%d heap=%s", seed, name)
			require.Equal(t, want, res.Dist, "seed=%d heap=%s", seed, name)

			// Every reachable vertex's path sums to its distance.
			for v := range res.Dist {
				if !res.Reachable(v) {
					continue
				}
				path, err := res.Path(v)
				require.NoError(t, err)
				require.Equal(t, 0, path[0])
				require.Equal(t, v, path[len(path)-1])
			}
		}
	}
}
