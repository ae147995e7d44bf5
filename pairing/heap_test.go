package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/internal/pqtest"
	"github.com/katalvlaran/meldheap/pairing"
	"github.com/katalvlaran/meldheap/pq"
)

func TestHeap_Conformance(t *testing.T) {
	pqtest.RunConformance(t, pairing.Factory())
}

func TestHeap_ZeroValueUsable(t *testing.T) {
	var h pairing.Heap
	assert.True(t, h.Empty())
	hd := h.Insert(3, 30)
	h.Insert(1, 10)
	ok, err := h.DecreaseKey(hd, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, h.Validate())

	k, p, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, 30, p)
}

func TestHeap_DegenerateChainValidates(t *testing.T) {
	// Decreasing inserts build a path as deep as the heap is large.
	h := pairing.New()
	const n = 5000
	for i := n; i > 0; i-- {
		h.Insert(i, i)
	}
	require.NoError(t, h.Validate())
	for want := 1; want <= n; want++ {
		k, _, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, want, k)
	}
}

func TestHeap_JoinNoops(t *testing.T) {
	h := pairing.New()
	h.Insert(1, 1)
	h.Join(nil)
	h.Join(h)
	h.Join(pairing.New())
	require.NoError(t, h.Validate())
	assert.Equal(t, 1, h.Len())
}

func TestHeap_DecreaseRootAndLeaves(t *testing.T) {
	h := pairing.New()
	hs := make([]pq.Handle, 10)
	for i := range hs {
		hs[i] = h.Insert(10*(i+1), i)
	}
	// Root decrease is in place.
	ok, err := h.DecreaseKey(hs[0], 1)
	require.NoError(t, err)
	require.True(t, ok)
	// Every other element moves in front of the root in turn.
	for i := 1; i < len(hs); i++ {
		ok, err = h.DecreaseKey(hs[i], 1-i)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, h.Validate())
		k, p, err := h.Min()
		require.NoError(t, err)
		require.Equal(t, 1-i, k)
		require.Equal(t, i, p)
	}

	items, err := pq.Drain(h)
	require.NoError(t, err)
	for i, it := range items {
		assert.Equal(t, len(hs)-1-i, it.Payload)
	}
}
