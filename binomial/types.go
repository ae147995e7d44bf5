package binomial

import (
	"unsafe"

	"github.com/katalvlaran/meldheap/internal/owner"
	"github.com/katalvlaran/meldheap/pq"
)

// element is the (key, payload) record a handle refers to.
// node is nil once the element has been extracted (tombstone).
type element struct {
	key     int
	payload int
	node    *node
	owner   *owner.Token
}

// Key implements pq.Handle.
func (e *element) Key() int { return e.key }

// Payload implements pq.Handle.
func (e *element) Payload() int { return e.payload }

// Valid implements pq.Handle.
func (e *element) Valid() bool { return e.node != nil }

// node is one vertex of a binomial tree.
//
// Ownership runs downward and rightward: firstChild, sibling and next.
// parent is a back-reference used only while sifting up.
type node struct {
	elem       *element
	parent     *node
	firstChild *node // leftmost child, highest degree
	sibling    *node // next child of the same parent
	next       *node // next root; nil for non-roots
	degree     int
}

func (n *node) key() int { return n.elem.key }

// Heap is a binomial min-heap. The zero value is an empty heap ready to use.
type Heap struct {
	head  *node // root list, strictly increasing degree
	min   *node // root with the smallest key; nil iff head == nil
	size  int
	token *owner.Token
}

// compile-time check
var _ pq.MinPQ = (*Heap)(nil)

// New returns an empty heap.
func New() *Heap {
	return &Heap{token: owner.New()}
}

// Factory returns a pq.Factory producing binomial heaps.
func Factory() pq.Factory {
	return func() pq.MinPQ { return New() }
}

// NodeBytes is the memory cost of one inserted element (node plus element
// record), used for memory estimates in statistics reports.
func NodeBytes() uintptr {
	return unsafe.Sizeof(node{}) + unsafe.Sizeof(element{})
}

// tok lazily creates the ownership token so the zero Heap works.
func (h *Heap) tok() *owner.Token {
	if h.token == nil {
		h.token = owner.New()
	}

	return h.token
}
