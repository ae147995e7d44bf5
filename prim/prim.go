package prim

import (
	"fmt"

	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pq"
)

// Prim computes a Minimum Spanning Tree of g grown from Options.Root.
//
// Error Conditions (in order):
//   - ErrNilGraph       : g is nil.
//   - ErrDirectedGraph  : g.Directed().
//   - ErrRootOutOfRange : Root is not a vertex of g.
//   - ErrDisconnected   : wrapped, with the tree of the root's component.
//
// Steps:
//  1. Insert every vertex (root key 0, others Infinity), one handle each.
//  2. While the queue is not empty: extract u; stop on Infinity; add the
//     edge parent[u] -> u to the tree; lower the key of every neighbour
//     still outside the tree whose connecting edge got lighter.
//  3. Report vertices never reached as ErrDisconnected.
//
// Complexity: V inserts, V extractions, at most E decrease-keys.
func Prim(g *graph.Graph, opts ...Option) (*Tree, error) {
	// 1. Build options and validate.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if !g.HasVertex(cfg.Root) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, cfg.Root, g.Order())
	}

	// 2. Seed the queue.
	n := g.Order()
	r := &runner{
		g:       g,
		key:     make([]int, n),
		parent:  make([]int, n),
		inTree:  make([]bool, n),
		handles: make([]pq.Handle, n),
		q:       cfg.Queue(),
		tree: &Tree{
			Root:   cfg.Root,
			Parent: nil,
			Edges:  make([]graph.Edge, 0, n-1),
		},
	}
	r.init(cfg.Root)

	// 3. Grow the tree.
	if err := r.process(); err != nil {
		return nil, err
	}
	r.tree.Parent = r.parent

	// 4. Anything left out is in another component.
	if missing := n - 1 - len(r.tree.Edges); missing > 0 {
		return r.tree, fmt.Errorf("%w: %d of %d vertices unreachable from root %d",
			ErrDisconnected, missing, n, cfg.Root)
	}

	return r.tree, nil
}

// runner holds the mutable state of one Prim execution.
type runner struct {
	g       *graph.Graph
	key     []int // lightest known edge into the tree
	parent  []int
	inTree  []bool
	handles []pq.Handle
	q       pq.MinPQ
	tree    *Tree
}

func (r *runner) init(root int) {
	for v := range r.key {
		r.key[v] = Infinity
		r.parent[v] = NoParent
	}
	r.key[root] = 0
	for v := range r.key {
		r.handles[v] = r.q.Insert(r.key[v], v)
	}
}

func (r *runner) process() error {
	for !r.q.Empty() {
		k, u, err := r.q.ExtractMin()
		if err != nil {
			return fmt.Errorf("prim: extract-min: %w", err)
		}
		if k == Infinity {
			break
		}

		r.inTree[u] = true
		if p := r.parent[u]; p != NoParent {
			r.tree.Edges = append(r.tree.Edges, graph.Edge{From: p, To: u, Weight: k})
			r.tree.Total += k
		}

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every edge u-v to neighbours still outside the tree.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("prim: neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.To
		if r.inTree[v] || e.Weight >= r.key[v] {
			continue
		}
		if _, err = r.q.DecreaseKey(r.handles[v], e.Weight); err != nil {
			return fmt.Errorf("prim: decrease-key of %d to %d: %w", v, e.Weight, err)
		}
		r.key[v] = e.Weight
		r.parent[v] = u
	}

	return nil
}
