// Package nullnet builds null-model networks: randomized copies of an
// observed network that keep every node's degree, so that a statistic
// measured on the original can be compared against an ensemble of
// permutations with the same degree sequence.
//
// The randomization is the double-edge swap: pick edges {a,b} and {c,d},
// replace them by {a,d} and {c,b}. Repeating this ceil(Q·|E|) times (Q≈100)
// mixes the wiring while the degree sequence stays fixed.
//
// Packages:
//
//	core/     — simple undirected Graph: O(1) edge lookup, uniform edge sampling, in-place swaps
//	bfs/      — reusable breadth-first reachability Searcher
//	swap/     — the swap engine: connectivity-preserving and unconstrained modes
//	edgelist/ — plain-text edge-list reader and writer
//	builder/  — deterministic fixtures: cycle, path, star, wheel, complete, random regular, G(n,p)
//	config/   — YAML run configuration with validation and XDG lookup
//	runner/   — read → build → target → reduce → permute → write, with structured logging
//	cmd/nullnet — the command-line tool (`permute`, `generate`)
//
// Quick start:
//
//	g, _, err := core.FromPairs(pairs)
//	if err != nil { ... }
//	minimum, err := runner.MinimumSwaps(100, g.EdgeCount())
//	if err != nil { ... }
//	res, err := swap.Permute(g, minimum, swap.WithSeed(7))
//	if errors.Is(err, swap.ErrSwapExhaustion) { ... }
//	_ = edgelist.Write(os.Stdout, res.Graph.Edges())
//
// Determinism: a run is a pure function of the input edge order, Q, the
// mode and the seed. The same inputs produce byte-identical output.
package nullnet
