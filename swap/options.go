// SPDX-License-Identifier: MIT
// Package: nullnet/swap
//
// options.go — functional options for Permute.
//
// Contract:
//   • Invalid values are recorded and surfaced as ErrOptionViolation by
//     Permute; option constructors never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//     Without either, a fixed default seed is used; wall-clock seeding is the
//     caller's business.

package swap

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nullnet/core"
)

const (
	// DefaultMaxAttempts is the per-batch ceiling on edge-pair draws.
	DefaultMaxAttempts = 1 << 30
	// DefaultBatchFloor is the smallest batch target of the outer loop.
	DefaultBatchFloor = 100
	// defaultSeed seeds the generator when the caller supplies none.
	defaultSeed int64 = 1
	// ctxCheckInterval is the number of attempts between cancellation checks.
	ctxCheckInterval = 4096
)

// Option configures Permute.
type Option func(*Options)

// Options holds the resolved Permute parameters.
type Options struct {
	Mode Mode
	// Rand drives edge sampling and the orientation coin flip.
	Rand core.Rand
	// MaxAttempts bounds the edge-pair draws of a single batch, redraws of
	// overlapping pairs included.
	MaxAttempts int
	// BatchFloor is the minimum accepted-swap target of a batch.
	BatchFloor int
	// Ctx is checked between batches and every few thousand attempts.
	Ctx context.Context
	// OnAttempt, if set, observes every attempt. It must not mutate the graph.
	OnAttempt func(Outcome)

	err error
}

// DefaultOptions returns ConnectivityPreserving mode, a generator seeded
// with a fixed default, DefaultMaxAttempts, DefaultBatchFloor and a
// background context.
func DefaultOptions() Options {
	return Options{
		Mode:        ConnectivityPreserving,
		MaxAttempts: DefaultMaxAttempts,
		BatchFloor:  DefaultBatchFloor,
		Ctx:         context.Background(),
	}
}

// WithMode selects the acceptance constraints.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ConnectivityPreserving && m != Unconstrained {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithRand supplies the random source. A nil source is a violation.
func WithRand(r core.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed seeds a fresh math/rand generator.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts sets the per-batch draw ceiling (n > 0).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithBatchFloor sets the minimum batch target (n > 0).
func WithBatchFloor(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: BatchFloor must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.BatchFloor = n
	}
}

// WithContext sets a context for caller-level cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAttempt registers an observer called after every attempt.
func WithOnAttempt(fn func(Outcome)) Option {
	return func(o *Options) {
		o.OnAttempt = fn
	}
}
