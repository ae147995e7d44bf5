package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no rng unless seeded")
	assert.Equal(t, DefaultMaxWeight, cfg.maxWeight)
	assert.False(t, cfg.directed)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithMaxWeight(5), WithMaxWeight(9), WithDirected(), WithSeed(1))
	assert.Equal(t, 9, cfg.maxWeight)
	assert.True(t, cfg.directed)
	assert.NotNil(t, cfg.rng)

	// Same seed, same first draws.
	a := newBuilderConfig(WithSeed(11))
	b := newBuilderConfig(WithSeed(11))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.weight(), b.weight())
	}
}
