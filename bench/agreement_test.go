package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAgreement(t *testing.T) {
	rs := []Result{
		{Scenario: "s", Algorithm: AlgoDijkstra, Heap: HeapBinomial, Run: 1, Reached: 10, Checksum: 99},
		{Scenario: "s", Algorithm: AlgoDijkstra, Heap: HeapPairing, Run: 1, Reached: 10, Checksum: 99},
		{Scenario: "s", Algorithm: AlgoPrim, Heap: HeapBinomial, Run: 1, Reached: 10, Checksum: 40},
		{Scenario: "s", Algorithm: AlgoPrim, Heap: HeapPairing, Run: 1, Reached: 10, Checksum: 41},
	}
	err := checkAgreement(rs)
	require.ErrorIs(t, err, ErrDisagreement)
	assert.ErrorContains(t, err, "s/prim: binomial run 1 checksum 40, pairing run 1 checksum 41")
	assert.True(t, rs[0].Agree)
	assert.True(t, rs[1].Agree)
	assert.True(t, rs[2].Agree)
	assert.False(t, rs[3].Agree)
	assert.Equal(t, "MISMATCH", rs[3].status())
}

func TestCheckAgreement_SkipsFailedTrials(t *testing.T) {
	rs := []Result{
		{Scenario: "s", Algorithm: AlgoPrim, Heap: HeapBinomial, Err: ErrInvalidConfig},
		{Scenario: "s", Algorithm: AlgoPrim, Heap: HeapPairing, Reached: 3, Checksum: 7},
	}
	require.NoError(t, checkAgreement(rs))
	assert.True(t, rs[1].Agree)
	assert.Equal(t, "error", rs[0].status())
}

func TestSortResults(t *testing.T) {
	rs := []Result{
		{order: 1, Algorithm: AlgoDijkstra, Heap: HeapBinomial, Run: 1},
		{order: 0, Algorithm: AlgoPrim, Heap: HeapPairing, Run: 2},
		{order: 0, Algorithm: AlgoPrim, Heap: HeapPairing, Run: 1},
		{order: 0, Algorithm: AlgoDijkstra, Heap: HeapPairing, Run: 1},
		{order: 0, Algorithm: AlgoPrim, Heap: HeapBinomial, Run: 1},
	}
	sortResults(rs)
	var got []string
	for _, r := range rs {
		got = append(got, r.Algorithm+"/"+r.Heap+"/"+string(rune('0'+r.Run)))
	}
	assert.Equal(t, []string{
		"dijkstra/pairing/1", "prim/binomial/1", "prim/pairing/1", "prim/pairing/2", "dijkstra/binomial/1",
	}, got)
}

func TestRun_CancelledMidRunKeepsAgreement(t *testing.T) {
	s := DefaultScenario()
	s.Name = "chain"
	s.Vertices = 200
	s.Edges = 600
	s.Connected = true
	s.Repeat = 10
	r, err := NewRunner(Config{Workers: 1, Scenarios: []Scenario{s}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.onTrial = func(Result) { cancel() }

	results, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotEmpty(t, results)
	assert.Less(t, len(results), 40)
	for _, res := range results {
		assert.True(t, res.Agree, "%s/%s run %d", res.Algorithm, res.Heap, res.Run)
		assert.Equal(t, "ok", res.status())
	}
}
