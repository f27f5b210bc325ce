// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Only sentinels are exported; implementations attach context with %w and
// callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed,
// e.g. a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
