// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_complete.go — Complete(n): K_n.
//
// K_n admits no double-edge swap for n ≥ 4: every replacement already exists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n: edges (i,j) for i<j in
// lexicographic order. n ≥ 1, else ErrTooFewVertices. Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		cfg.addNodes(g, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
