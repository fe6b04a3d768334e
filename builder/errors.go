// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w` ("<Method>: n=3 < min=4: %w").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not produce a valid graph
// (nil constructor, vertex id overflow, CSR materialization failure).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated parameter
// (for example an unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")
