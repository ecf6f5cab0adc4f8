// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_star.go — Star(n): hub idFn(0) joined to leaves idFn(1..n-1).
//
// A star admits no double-edge swap: every pair of edges shares the hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star K_{1,n-1}.
// n ≥ 2, else ErrTooFewVertices. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		cfg.addNodes(g, n)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
