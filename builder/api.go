// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return wrapped
// sentinels and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Offset runs c with every index shifted by k, so that c(0) lands on ID
// idFn(k). Composing Offset with BuildGraph assembles disjoint components:
//
//	BuildGraph(nil, Cycle(10), Offset(10, Cycle(3)))  // nodes 0..9 and 10..12
func Offset(k int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Offset: nil constructor: %w", ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(i int) core.NodeID { return base(i + k) }

		return c(g, cfg)
	}
}

// Kind names a topology for FromKind.
type Kind string

// Supported kinds.
const (
	KindCycle    Kind = "cycle"
	KindPath     Kind = "path"
	KindStar     Kind = "star"
	KindWheel    Kind = "wheel"
	KindComplete Kind = "complete"
	KindRegular  Kind = "regular"
	KindSparse   Kind = "sparse"
)

// Kinds lists the supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindCycle, KindPath, KindStar, KindWheel, KindComplete, KindRegular, KindSparse}
}

// FromKind resolves a topology name into a Constructor. d is used by
// KindRegular only, p by KindSparse only.
func FromKind(kind Kind, n, d int, p float64) (Constructor, error) {
	switch kind {
	case KindCycle:
		return Cycle(n), nil
	case KindPath:
		return Path(n), nil
	case KindStar:
		return Star(n), nil
	case KindWheel:
		return Wheel(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindRegular:
		return RandomRegular(n, d), nil
	case KindSparse:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// addEdge wraps core insertion failures with constructor context.
func addEdge(g *core.Graph, method string, u, v core.NodeID) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
