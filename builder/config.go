// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn (identity: 0,1,2,...)
//   • rng  = nil (stochastic constructors fail with ErrNeedRandSource)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/nullnet/core"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value, so Offset can shift IDs without leaking the change.
type builderConfig struct {
	// idFn maps a constructor-local index to a node ID.
	idFn IDFn
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes registers idFn(0..n-1) in index order.
func (cfg builderConfig) addNodes(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}
