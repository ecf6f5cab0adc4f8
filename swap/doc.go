// Package swap randomizes a simple undirected graph by degree-preserving
// double-edge swaps, producing a null-model network: same degree sequence,
// same edge count, randomized wiring.
//
// A double-edge swap removes {a,b} and {c,d} and adds {a,d} and {c,b}.
// Every endpoint keeps its degree. A swap is rejected when the two sampled
// edges overlap (they are redrawn), when it would create a parallel edge, and
// (in ConnectivityPreserving mode) when it would disconnect the graph.
//
// Modes:
//
//   - ConnectivityPreserving (default): the input must be connected, the
//     output stays connected, and at least the requested number of swaps is
//     accepted. Work proceeds in batches of max(remaining, BatchFloor); a
//     batch that burns MaxAttempts edge-pair draws fails with ErrSwapExhaustion.
//   - Unconstrained: exactly the requested number of attempts; the accepted
//     count may be lower and the result may be disconnected.
//
// Determinism: with the same input graph (including its edge order), the
// same minimum and the same random stream, the output is identical. Seed via
// WithSeed or WithRand; the package never reads the clock.
//
// Usage:
//
//	g, _, _ := core.FromPairs(pairs)
//	res, err := swap.Permute(g, int(math.Ceil(100*float64(g.EdgeCount()))), swap.WithSeed(7))
//	if errors.Is(err, swap.ErrSwapExhaustion) { /* graph too small or too dense */ }
//
// Engine exposes the attempt loop for callers that need to drive it step
// by step (tests, progress reporting).
package swap
