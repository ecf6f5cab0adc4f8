// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_random_sparse.go — RandomSparse(n,p): Erdős–Rényi G(n,p).
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices; p ∈ [0,1], else ErrInvalidProbability.
//   • cfg.rng is required for 0 < p < 1 (ErrNeedRandSource); p=0 and p=1
//     are deterministic (empty and complete).
//   • Pairs (i,j), i<j, are visited in lexicographic order; each consumes one
//     Float64 draw when an RNG is present.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		cfg.addNodes(g, n)
		rng := cfg.rng
		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if rng == nil {
					keep = p == probMax
				} else {
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
