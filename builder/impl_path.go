// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_path.go — Path(n): the simple path P_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for P_n: nodes idFn(0..n-1), edges (i, i+1).
// n ≥ 2, else ErrTooFewVertices. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		cfg.addNodes(g, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
