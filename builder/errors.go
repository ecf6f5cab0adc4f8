// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach the constructor name and parameters with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a size or degree parameter outside the range
// accepted by the constructor (n too small, d ≥ n, odd n·d, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts, or an
// insertion into the graph failed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates an unrecognized topology name passed to FromKind.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
