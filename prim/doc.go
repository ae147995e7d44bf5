// Package prim computes a Minimum Spanning Tree (MST) of an undirected
// weighted graph.Graph with Prim's algorithm, driven by any mergeable priority
// queue through the pq.MinPQ contract.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T of E that connects all vertices with minimum total weight.
//   - Prim grows one tree from a root vertex. The queue holds every vertex not
//     yet in the tree, keyed by the lightest edge that connects it to the tree.
//
// Strategy
//
//   - Insert every vertex once: the root with key 0, all others with Infinity.
//     The payload is the vertex id; one pq.Handle is kept per vertex.
//   - Extract the vertex u with the lightest connecting edge and add it to the
//     tree. For each neighbour v still outside the tree, if w(u,v) is below
//     v's key, lower the key in place with DecreaseKey and record u as v's
//     parent.
//   - An extracted key of Infinity means the rest of the graph is not
//     connected to the root's component.
//
// Disconnected graphs
//
// Prim returns the spanning tree of the root's component together with an
// error wrapping ErrDisconnected and the number of vertices left out. The
// partial tree is valid and callers may use it.
//
// Complexity
//
//   - Binomial heap: O(E log V) worst case.
//   - Pairing heap: O(V log V + E) amortized in practice.
//   - Space: O(V).
//
// Errors
//
//   - ErrNilGraph:       nil *graph.Graph.
//   - ErrDirectedGraph:  the graph is directed; MST is defined on undirected graphs.
//   - ErrRootOutOfRange: Root is not a vertex of the graph.
//   - ErrDisconnected:   some vertices are unreachable from the root (partial tree returned).
package prim
