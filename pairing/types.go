package pairing

import (
	"unsafe"

	"github.com/katalvlaran/meldheap/internal/owner"
	"github.com/katalvlaran/meldheap/pq"
)

// node is one element of the heap and doubles as its pq.Handle: pairing
// heaps never move elements between nodes, so the node is a stable identity.
//
// child and sibling are the owning links; parent is a back-reference used by
// cut. A removed node has dead set and all links cleared.
type node struct {
	key     int
	payload int
	parent  *node
	child   *node // leftmost child
	sibling *node // next sibling in the parent's child list
	owner   *owner.Token
	dead    bool
}

// Key implements pq.Handle.
func (n *node) Key() int { return n.key }

// Payload implements pq.Handle.
func (n *node) Payload() int { return n.payload }

// Valid implements pq.Handle.
func (n *node) Valid() bool { return !n.dead }

// Heap is a pairing min-heap. The zero value is an empty heap ready to use.
type Heap struct {
	root  *node // global minimum; nil iff empty
	size  int
	token *owner.Token
}

// compile-time check
var _ pq.MinPQ = (*Heap)(nil)

// New returns an empty heap.
func New() *Heap {
	return &Heap{token: owner.New()}
}

// Factory returns a pq.Factory producing pairing heaps.
func Factory() pq.Factory {
	return func() pq.MinPQ { return New() }
}

// NodeBytes is the memory cost of one inserted element.
func NodeBytes() uintptr {
	return unsafe.Sizeof(node{})
}

func (h *Heap) tok() *owner.Token {
	if h.token == nil {
		h.token = owner.New()
	}

	return h.token
}
