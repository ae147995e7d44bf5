// Package builder generates seeded random weighted graphs for the shortest-path
// and spanning-tree experiments.
//
// Constructors:
//
//   - RandomEdges(n, m, opts...): draws m ordered vertex pairs uniformly with
//     replacement, skips self-loops, and gives each kept edge a weight drawn
//     uniformly from [1, maxWeight]. The resulting graph may have fewer than m
//     edges, may contain parallel edges and may be disconnected.
//   - RandomConnected(n, m, opts...): lays a spanning chain 0-1-...-(n-1)
//     first, then adds random non-loop edges until exactly m edges exist.
//
// Options (functional, last wins):
//
//   - WithSeed(seed): deterministic *rand.Rand; same seed, same graph.
//   - WithRand(r): caller-supplied source; panics on nil.
//   - WithMaxWeight(w): upper bound of the weight draw (default 100).
//   - WithDirected(): build a directed graph.
//
// A random source is mandatory: constructors return ErrNeedRandSource when
// neither WithSeed nor WithRand was given.
//
// Errors:
//
//	ErrTooFewVertices - n below the constructor's minimum.
//	ErrTooFewEdges    - m negative, or too small to connect n vertices.
//	ErrInvalidWeight  - maxWeight below 1.
//	ErrNeedRandSource - no random source configured.
//
// Determinism: for a fixed seed the draw order is u, v, w per attempt, so
// RandomEdges reproduces the same edge list on every run.
package builder
