package prim

import (
	"errors"
	"math"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pq"
)

// Infinity is the key of a vertex with no known connecting edge.
const Infinity = math.MaxInt

// NoParent marks the root and vertices outside the tree.
const NoParent = -1

// ErrNilGraph indicates that a nil *graph.Graph was passed to Prim.
var ErrNilGraph = errors.New("prim: graph is nil")

// ErrDirectedGraph indicates that Prim was called on a directed graph.
var ErrDirectedGraph = errors.New("prim: MST requires an undirected graph")

// ErrRootOutOfRange indicates that the root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim: root vertex out of range")

// ErrDisconnected indicates that the graph is not connected, so the tree
// spans only the root's component.
var ErrDisconnected = errors.New("prim: graph is disconnected")

// Options configures Prim.
//
//	Root  - vertex the tree grows from (default 0).
//	Queue - priority-queue factory (default binomial heap).
type Options struct {
	Root  int
	Queue pq.Factory
}

// Option configures Options.
type Option func(*Options)

// Root sets the starting vertex.
func Root(v int) Option {
	return func(o *Options) {
		o.Root = v
	}
}

// WithQueue selects the priority-queue implementation. Panics on nil.
func WithQueue(f pq.Factory) Option {
	if f == nil {
		panic("prim: WithQueue(nil)")
	}
	return func(o *Options) {
		o.Queue = f
	}
}

// DefaultOptions returns root 0 and the binomial heap.
func DefaultOptions() Options {
	return Options{Root: 0, Queue: binomial.Factory()}
}

// Tree is the spanning tree grown by Prim.
//
// Parent[v] is v's parent in the tree, or NoParent for the root and for
// vertices outside the root's component. Edges lists the tree edges
// parent -> child in the order the children joined the tree. Total is the
// sum of their weights.
type Tree struct {
	Root   int
	Parent []int
	Edges  []graph.Edge
	Total  int
}

// Spans reports whether v belongs to the tree.
func (t *Tree) Spans(v int) bool {
	if v < 0 || v >= len(t.Parent) {
		return false
	}

	return v == t.Root || t.Parent[v] != NoParent
}
