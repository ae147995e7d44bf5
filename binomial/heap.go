package binomial

import (
	"fmt"

	"github.com/katalvlaran/meldheap/pq"
)

// Insert adds (key, payload) as a new degree-0 tree at the front of the root
// list, consolidates, and returns the element's handle.
//
// Complexity: O(1) amortized, O(log n) worst case.
func (h *Heap) Insert(key, payload int) pq.Handle {
	e := &element{key: key, payload: payload, owner: h.tok()}
	n := &node{elem: e}
	e.node = n

	// A degree-0 tree always belongs at the front of a degree-ordered list.
	n.next = h.head
	h.head = n
	h.size++

	h.linkSameDegreeTrees()

	// A strictly smaller key wins every link it takes part in, so n is still
	// a root here whenever this comparison succeeds.
	if h.min == nil || key < h.min.key() {
		h.min = n
	}

	return e
}

// Min returns the smallest key and its payload without removing it.
func (h *Heap) Min() (int, int, error) {
	if h.min == nil {
		return 0, 0, pq.ErrEmptyHeap
	}

	return h.min.elem.key, h.min.elem.payload, nil
}

// ExtractMin removes the element with the smallest key and returns its key
// and payload. The element's handle becomes stale.
//
// Steps:
//  1. Locate and detach the cached min root from the root list.
//  2. Push its children onto a temporary list one by one. Children are stored
//     highest degree first, so pushing reverses them into increasing degree.
//  3. Merge the temporary list into the root list by degree and consolidate.
//  4. Rescan the (at most log n) roots to recompute min.
//
// Complexity: O(log n).
func (h *Heap) ExtractMin() (int, int, error) {
	m := h.min
	if m == nil {
		return 0, 0, pq.ErrEmptyHeap
	}

	// 1) Find m's predecessor before touching anything.
	var prev *node
	cur := h.head
	for cur != nil && cur != m {
		prev = cur
		cur = cur.next
	}
	if cur == nil {
		return 0, 0, fmt.Errorf("binomial: cached min is not a root: %w", pq.ErrCorrupt)
	}
	if prev == nil {
		h.head = m.next
	} else {
		prev.next = m.next
	}
	m.next = nil

	// 2) Reverse the children into their own root list.
	var children *node
	child := m.firstChild
	m.firstChild = nil
	for child != nil {
		nextSibling := child.sibling
		child.parent = nil
		child.sibling = nil
		child.next = children
		children = child
		child = nextSibling
	}

	// 3) Merge and restore one-tree-per-degree.
	h.head = mergeRootLists(h.head, children)
	h.linkSameDegreeTrees()

	// 4) Full rescan; the old min is gone.
	h.rescanMin()
	h.size--

	e := m.elem
	m.elem = nil
	e.node = nil

	return e.key, e.payload, nil
}

// DecreaseKey lowers the key of the element behind hd to newKey.
//
// Returns (false, nil) without touching the heap when newKey is greater than
// the current key. Otherwise the element is sifted up by swapping elements
// with its parent while it is smaller; tree shape and degrees never change.
//
// Errors: pq.ErrNilHandle, pq.ErrStaleHandle, pq.ErrForeignHandle.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(hd pq.Handle, newKey int) (bool, error) {
	e, err := h.resolve(hd)
	if err != nil {
		return false, err
	}
	if newKey > e.key {
		return false, nil
	}

	e.key = newKey
	n := e.node
	for p := n.parent; p != nil && n.key() < p.key(); p = n.parent {
		n.elem, p.elem = p.elem, n.elem
		n.elem.node = n
		p.elem.node = p
		n = p
	}

	// Only a root can hold a key below the cached minimum.
	if newKey < h.min.key() {
		h.min = e.node
	}

	return true, nil
}

// Empty reports whether the heap has no elements. O(1).
func (h *Heap) Empty() bool { return h.head == nil }

// Len returns the number of elements. O(1).
func (h *Heap) Len() int { return h.size }

// resolve validates a handle against this heap.
func (h *Heap) resolve(hd pq.Handle) (*element, error) {
	if hd == nil {
		return nil, pq.ErrNilHandle
	}
	e, ok := hd.(*element)
	if !ok {
		return nil, pq.ErrForeignHandle
	}
	if e == nil {
		return nil, pq.ErrNilHandle
	}
	if e.node == nil {
		return nil, pq.ErrStaleHandle
	}
	if !h.tok().Owns(e.owner) {
		return nil, pq.ErrForeignHandle
	}

	return e, nil
}
