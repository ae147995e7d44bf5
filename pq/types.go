// SPDX-License-Identifier: MIT
// Package: meldheap/pq
//
// types.go - shared contract of the mergeable min-priority queues.
//
// Contract:
//   - Keys and payloads are plain ints; smaller key means higher priority.
//   - A failed call leaves the queue exactly as it was before the call.
//   - Sentinels are returned bare by queue methods; callers add context with %w.

package pq

//go:generate mockgen -destination=mock_pq/mock_pq.go -package=mock_pq github.com/katalvlaran/meldheap/pq MinPQ,Handle

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every MinPQ implementation.
var (
	// ErrEmptyHeap indicates Min or ExtractMin was called on an empty queue.
	// Expected in loops that run until Empty(); never a corruption signal.
	ErrEmptyHeap = errors.New("pq: heap is empty")

	// ErrNilHandle indicates DecreaseKey received a nil Handle.
	ErrNilHandle = errors.New("pq: nil handle")

	// ErrStaleHandle indicates the handle's element was already removed by
	// ExtractMin. Extraction tombstones the element, so this is always detected.
	ErrStaleHandle = errors.New("pq: stale handle")

	// ErrForeignHandle indicates the handle was minted by a different queue
	// (or by a queue of another implementation) that was never melded into
	// the receiver.
	ErrForeignHandle = errors.New("pq: handle belongs to another heap")

	// ErrIncompatibleHeap indicates Meld was asked to absorb a queue of a
	// different concrete implementation.
	ErrIncompatibleHeap = errors.New("pq: incompatible heap implementation")

	// ErrCorrupt is wrapped by Validate helpers when a structural invariant
	// does not hold, and by ExtractMin if it finds its own cached state
	// inconsistent. Seeing it outside Validate means a bug in the heap.
	ErrCorrupt = errors.New("pq: heap invariant violated")
)

// Handle is an opaque reference to one element of a MinPQ, returned by Insert.
//
// A handle stays valid until its element is removed by ExtractMin, including
// across Meld: absorbed elements keep their handles. Key and Payload read the
// element's current values; after extraction they keep reporting the values
// the element had when it was removed.
type Handle interface {
	// Key returns the element's current priority.
	Key() int
	// Payload returns the identifier stored with the element.
	Payload() int
	// Valid reports whether the element is still inside a heap.
	Valid() bool
}

// MinPQ is the MergeableMinPQ capability implemented by binomial.Heap and
// pairing.Heap.
type MinPQ interface {
	// Insert adds (key, payload) and returns its handle.
	Insert(key, payload int) Handle

	// Min returns the smallest key and its payload without removing it.
	// Returns ErrEmptyHeap if the queue is empty.
	Min() (key, payload int, err error)

	// ExtractMin removes the smallest element and returns its key and payload.
	// Returns ErrEmptyHeap if the queue is empty.
	ExtractMin() (key, payload int, err error)

	// DecreaseKey lowers the key of the element referenced by h.
	// If newKey is greater than the current key the call is a no-op and
	// reports false. Equal keys are accepted and report true.
	DecreaseKey(h Handle, newKey int) (bool, error)

	// Meld moves every element of other into the receiver and leaves other
	// empty. other must be the same implementation (ErrIncompatibleHeap).
	Meld(other MinPQ) error

	// Empty reports whether the queue holds no elements. O(1).
	Empty() bool

	// Len returns the number of elements. O(1).
	Len() int
}

// Factory creates a fresh, empty MinPQ. Drivers take a Factory so the heap
// variant is chosen by the caller.
type Factory func() MinPQ

// Item is a (key, payload) pair as returned by ExtractMin.
type Item struct {
	Key     int
	Payload int
}

// String renders the pair as "key:payload".
func (it Item) String() string {
	return fmt.Sprintf("%d:%d", it.Key, it.Payload)
}

// Drain extracts every element of q in priority order.
// On return q is empty. Complexity: n extractions.
func Drain(q MinPQ) ([]Item, error) {
	out := make([]Item, 0, q.Len())
	for !q.Empty() {
		k, p, err := q.ExtractMin()
		if err != nil {
			return out, fmt.Errorf("pq: drain after %d items: %w", len(out), err)
		}
		out = append(out, Item{Key: k, Payload: p})
	}

	return out, nil
}

// Keys returns only the keys of items, in order.
func Keys(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Key
	}

	return out
}
