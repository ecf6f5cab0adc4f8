// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_cycle.go — Cycle(n): the simple cycle C_n.
//
// Contract:
//   • n ≥ 3, else ErrTooFewVertices.
//   • Nodes idFn(0..n-1); edges (i, i+1 mod n) for i = 0..n-1, in that order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
