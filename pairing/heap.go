package pairing

import "github.com/katalvlaran/meldheap/pq"

// Insert melds a singleton node holding (key, payload) with the root and
// returns it as the handle. Complexity: O(1).
func (h *Heap) Insert(key, payload int) pq.Handle {
	n := &node{key: key, payload: payload, owner: h.tok()}
	h.root = meld(h.root, n)
	h.size++

	return n
}

// Min returns the root's key and payload without removing it.
func (h *Heap) Min() (int, int, error) {
	if h.root == nil {
		return 0, 0, pq.ErrEmptyHeap
	}

	return h.root.key, h.root.payload, nil
}

// ExtractMin removes the root and rebuilds the tree from its children with
// two-pass pairing. The removed node's handle becomes stale.
//
// Complexity: O(log n) amortized.
func (h *Heap) ExtractMin() (int, int, error) {
	r := h.root
	if r == nil {
		return 0, 0, pq.ErrEmptyHeap
	}

	children := r.child
	r.child = nil
	h.root = mergePairs(children)
	if h.root != nil {
		h.root.parent = nil
	}
	h.size--

	r.dead = true

	return r.key, r.payload, nil
}

// DecreaseKey lowers the key of the node behind hd to newKey.
//
// Returns (false, nil) and leaves the heap untouched when newKey is greater
// than the current key. Otherwise the key is updated; a non-root node is cut
// from its parent together with its subtree and melded with the root.
//
// Errors: pq.ErrNilHandle, pq.ErrStaleHandle, pq.ErrForeignHandle.
// Complexity: O(siblings) for the cut plus O(1) for the meld.
func (h *Heap) DecreaseKey(hd pq.Handle, newKey int) (bool, error) {
	n, err := h.resolve(hd)
	if err != nil {
		return false, err
	}
	if newKey > n.key {
		return false, nil
	}

	n.key = newKey
	if n == h.root {
		return true, nil
	}

	cut(n)
	h.root = meld(h.root, n)

	return true, nil
}

// Empty reports whether the heap has no elements. O(1).
func (h *Heap) Empty() bool { return h.root == nil }

// Len returns the number of elements. O(1).
func (h *Heap) Len() int { return h.size }

func (h *Heap) resolve(hd pq.Handle) (*node, error) {
	if hd == nil {
		return nil, pq.ErrNilHandle
	}
	n, ok := hd.(*node)
	if !ok {
		return nil, pq.ErrForeignHandle
	}
	if n == nil {
		return nil, pq.ErrNilHandle
	}
	if n.dead {
		return nil, pq.ErrStaleHandle
	}
	if !h.tok().Owns(n.owner) {
		return nil, pq.ErrForeignHandle
	}

	return n, nil
}
