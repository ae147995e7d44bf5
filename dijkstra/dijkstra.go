package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pq"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a vertex of g (ErrSourceOutOfRange).
//
// Every edge weight is non-negative: graph.AddEdge rejects negative weights
// with graph.ErrNegativeWeight (aliased here as ErrNegativeWeight), so
// relaxation needs no per-edge sign check.
//
// Complexity:
//
//   - V inserts, at most V extractions, at most E decrease-keys.
//   - Space: O(V).
func Dijkstra(g *graph.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, g.Order())
	}

	// 3) Allocate per-vertex state and the queue.
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int, n),
		prev:    make([]int, n),
		done:    make([]bool, n),
		handles: make([]pq.Handle, n),
		q:       cfg.Queue(),
	}

	// 4) Seed the queue and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	dist    []int       // best known distance per vertex
	prev    []int       // predecessor per vertex
	done    []bool      // distance finalized
	handles []pq.Handle // queue element per vertex
	q       pq.MinPQ
}

// init inserts every vertex once: the source at 0, the others at Infinity.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoVertex
	}
	r.dist[r.options.Source] = 0

	for v := range r.dist {
		r.handles[v] = r.q.Insert(r.dist[v], v)
	}
}

// process extracts vertices in distance order until the queue is empty or
// only unreachable vertices remain.
func (r *runner) process() error {
	for !r.q.Empty() {
		// 1) Settle the closest vertex; the payload is its id.
		d, u, err := r.q.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract-min: %w", err)
		}

		// 2) Everything left is unreachable (or beyond MaxDistance).
		if d == Infinity {
			break
		}

		r.done[u] = true
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbour of u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var newDist int
	for _, e := range neighbors {
		if r.done[e.To] {
			continue
		}
		if e.Weight >= Infinity-r.dist[u] {
			continue // would overflow; no finite improvement possible
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}

		// Strictly shorter path found: lower the key in place.
		if _, err = r.q.DecreaseKey(r.handles[e.To], newDist); err != nil {
			return fmt.Errorf("dijkstra: decrease-key of %d to %d: %w", e.To, newDist, err)
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
	}

	return nil
}
