// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/nullnet/core"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → node ID mapping. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDOffset shifts every generated ID by k: index i maps to i+k.
func WithIDOffset(k int) BuilderOption {
	return WithIDScheme(func(i int) core.NodeID { return core.NodeID(i + k) })
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
