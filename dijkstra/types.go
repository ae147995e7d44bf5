package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pq"
)

// Infinity is the distance reported for vertices the source cannot reach.
const Infinity = math.MaxInt

// NoVertex marks the absence of a predecessor.
const NoVertex = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight is graph.ErrNegativeWeight. graph.AddEdge rejects
	// negative weights, so a *graph.Graph never reaches Dijkstra with one.
	ErrNegativeWeight = graph.ErrNegativeWeight

	// ErrUnreachable indicates that no path exists from the source to the vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      - starting vertex (default 0).
// Queue       - factory for the priority queue (default binomial heap).
// MaxDistance - vertices whose distance would exceed this value are left at
//
//	Infinity. Default math.MaxInt (no cap).
type Options struct {
	Source      int
	Queue       pq.Factory
	MaxDistance int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithQueue selects the priority-queue implementation. Panics on nil.
func WithQueue(f pq.Factory) Option {
	if f == nil {
		panic("dijkstra: WithQueue(nil)")
	}
	return func(o *Options) {
		o.Queue = f
	}
}

// WithMaxDistance caps exploration: vertices farther than max stay at Infinity.
// Panics on a negative max.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: source 0, binomial heap, no cap.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		Queue:       binomial.Factory(),
		MaxDistance: math.MaxInt,
	}
}

// Result holds the shortest-path tree computed by Dijkstra.
//
// Dist[v] is the distance from Source to v, or Infinity.
// Prev[v] is v's predecessor on one shortest path, or NoVertex for the
// source and for unreachable vertices.
type Result struct {
	Source int
	Dist   []int
	Prev   []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// Path returns the vertices of the shortest path Source -> v, inclusive.
//
// Errors: graph.ErrVertexOutOfRange (wrapped) if v is not a vertex,
// ErrUnreachable if v has no path from the source.
// Complexity: O(path length).
func (r *Result) Path(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("dijkstra: path to %d: %w", v, graph.ErrVertexOutOfRange)
	}
	if r.Dist[v] == Infinity {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	// Walk predecessors back to the source, then reverse.
	var path []int
	for u := v; u != NoVertex; u = r.Prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
