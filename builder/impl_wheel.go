// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_wheel.go — Wheel(n): rim C_n on idFn(0..n-1) plus hub idFn(n).
//
// Emission order: rim edges first (as Cycle), then spokes hub–i for i = 0..n-1.
// Result: n+1 nodes, 2n edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 3
)

// Wheel returns a Constructor for the wheel with an n-node rim.
// n ≥ 3, else ErrTooFewVertices. Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: rim n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		hub := cfg.idFn(n)
		g.AddNode(hub)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
