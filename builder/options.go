// SPDX-License-Identifier: MIT
// Package: meldheap/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   - Options mutate builderConfig; later options override earlier ones.
//   - WithRand(nil) panics; range checks that depend on caller data
//     (maxWeight) surface as errors from the constructor instead.

package builder

import (
	"math/rand"
)

// DefaultMaxWeight is the upper bound of edge weights unless overridden.
const DefaultMaxWeight = 100

// Option customizes a constructor by mutating builderConfig.
type Option func(*builderConfig)

// builderConfig aggregates every knob used by constructors.
type builderConfig struct {
	rng       *rand.Rand // nil until WithSeed/WithRand
	maxWeight int
	directed  bool
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{maxWeight: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source. Panics on nil.
// The source is consumed by the constructor; do not share it across
// goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxWeight sets the inclusive upper bound of the uniform weight draw.
// Values below 1 are reported as ErrInvalidWeight by the constructor.
func WithMaxWeight(w int) Option {
	return func(c *builderConfig) {
		c.maxWeight = w
	}
}

// WithDirected builds a directed graph instead of an undirected one.
func WithDirected() Option {
	return func(c *builderConfig) {
		c.directed = true
	}
}
