// SPDX-License-Identifier: MIT
// Package: meldheap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w and the method name.
//   - Option constructors panic on nil inputs; constructors never panic.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooFewEdges indicates m is negative, or smaller than n-1 for
// RandomConnected.
var ErrTooFewEdges = errors.New("builder: too few edges")

// ErrInvalidWeight indicates the configured maximum weight is below 1.
var ErrInvalidWeight = errors.New("builder: max weight must be at least 1")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
