package binomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/internal/pqtest"
	"github.com/katalvlaran/meldheap/pq"
)

func TestHeap_Conformance(t *testing.T) {
	pqtest.RunConformance(t, binomial.Factory())
}

func TestHeap_ZeroValueUsable(t *testing.T) {
	var h binomial.Heap
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

// isStrictlyIncreasing reports whether every degree appears at most once.
func isStrictlyIncreasing(ds []int) bool {
	for i := 1; i < len(ds); i++ {
		if ds[i] <= ds[i-1] {
			return false
		}
	}

	return true
}

func TestHeap_RootDegreesFollowBinaryRepresentation(t *testing.T) {
	h := binomial.New()
	for n := 1; n <= 64; n++ {
		h.Insert(100-n, n)
		ds := h.Degrees()
		require.True(t, isStrictlyIncreasing(ds), "n=%d degrees=%v", n, ds)

		// Degrees present are exactly the set bits of n.
		var want []int
		for bit := 0; 1<<bit <= n; bit++ {
			if n&(1<<bit) != 0 {
				want = append(want, bit)
			}
		}
		require.Equal(t, want, ds, "n=%d", n)
	}

	for h.Len() > 0 {
		_, _, err := h.ExtractMin()
		require.NoError(t, err)
		require.True(t, isStrictlyIncreasing(h.Degrees()), "len=%d degrees=%v", h.Len(), h.Degrees())
		require.NoError(t, h.Validate())
	}
}

func TestHeap_DecreaseKeyHandleFollowsPayload(t *testing.T) {
	// 16 keys form a single degree-4 tree; the deepest element must climb
	// four levels, swapping payloads on the way.
	h := binomial.New()
	hs := make([]pq.Handle, 16)
	for i := range hs {
		hs[i] = h.Insert(100+i, i)
	}
	require.Equal(t, []int{4}, h.Degrees())

	for i := len(hs) - 1; i >= 0; i-- {
		ok, err := h.DecreaseKey(hs[i], i-50)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, h.Validate())
		assert.Equal(t, i, hs[i].Payload())
		assert.Equal(t, i-50, hs[i].Key())
	}

	// Decrease the same handles again; they must still point at their own pair.
	ok, err := h.DecreaseKey(hs[15], -1000)
	require.NoError(t, err)
	require.True(t, ok)
	k, p, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, -1000, k)
	assert.Equal(t, 15, p)

	_, p, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 15, p)
	for want := 0; want < 15; want++ {
		_, p, err = h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}
	assert.True(t, h.Empty())
}

func TestHeap_MergeConsolidates(t *testing.T) {
	a, b := binomial.New(), binomial.New()
	for i := 0; i < 7; i++ { // degrees 0,1,2
		a.Insert(i*2, i)
	}
	for i := 0; i < 7; i++ { // degrees 0,1,2
		b.Insert(i*2+1, 100+i)
	}
	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, []int{1, 2, 3}, a.Degrees()) // 14 = 0b1110
	assert.True(t, b.Empty())
	assert.Nil(t, b.Degrees())

	items, err := pq.Drain(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, pq.Keys(items))
}

func TestHeap_MergeNoops(t *testing.T) {
	h := binomial.New()
	h.Insert(1, 1)
	h.Merge(nil)
	h.Merge(h)
	h.Merge(binomial.New())
	require.NoError(t, h.Validate())
	assert.Equal(t, 1, h.Len())
}

func TestHeap_EqualKeysKeepMinOnRoot(t *testing.T) {
	// Equal keys make every link a tie; the cached min must stay a root.
	h := binomial.New()
	for i := 0; i < 33; i++ {
		h.Insert(7, i)
		require.NoError(t, h.Validate(), "after insert %d", i)
	}
	for h.Len() > 0 {
		k, _, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, 7, k)
		require.NoError(t, h.Validate())
	}
}
