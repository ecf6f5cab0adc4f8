// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// impl_random_regular.go — RandomRegular(n,d): a random simple d-regular graph.
//
// Algorithm (stub matching with bounded retries):
//  1. Emit d stubs per vertex index.
//  2. Shuffle with cfg.rng and pair consecutive stubs.
//  3. Reject the whole matching on a loop or a repeated pair; retry.
//  4. After maxStubMatchingAttempts failures return ErrConstructFailed.
//
// Contract:
//   • 1 ≤ n, 0 ≤ d < n, n·d even; else ErrTooFewVertices.
//   • cfg.rng required (ErrNeedRandSource).
//   • The graph is not necessarily connected.
//
// Complexity: O(n·d) per attempt. Success probability per attempt decays
// roughly like exp(-(d²-1)/4), so keep d small.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 4096
)

// RandomRegular returns a Constructor for a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		cfg.addNodes(g, n)
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		rng := cfg.rng
		seen := make(map[[2]int]struct{}, stubCount/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			clear(seen)
			valid := true
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(g, methodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
