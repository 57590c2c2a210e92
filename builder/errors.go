// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w ("RandomSparse: p=1.5 ...: %w").
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewItems indicates that a size parameter (item count, set count,
// block count, window width, rows, cols, set size) is outside its domain.
var ErrTooFewItems = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set one with WithSeed, WithSeedStream or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a generated instance that
// failed validation.
var ErrConstructFailed = errors.New("builder: construction failed")
