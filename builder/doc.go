// Package builder provides deterministic graph fixtures for nullnet: classic
// topologies (cycle, path, star, wheel, complete) and seeded random graphs
// (d-regular, Erdős–Rényi). They feed tests, benchmarks and the `generate`
// command, whose output is a ready-made edge list for `permute`.
//
// The package is organized around one orchestrator and small constructors:
//
//   - Constructor:  func(g *core.Graph, cfg builderConfig) error
//   - BuildGraph:   creates a graph, resolves options, applies constructors in order.
//   - BuilderOption: WithSeed, WithRand, WithIDScheme, WithIDOffset.
//   - Offset:       runs a constructor on shifted IDs, so several components
//     can be assembled into one disconnected graph.
//
// Vertex IDs come from an IDFn (index → core.NodeID). The default is the
// identity, so Cycle(4) yields nodes 0..3.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graph,
//     including node and edge insertion order.
//   - Constructors validate parameters and return wrapped sentinels; option
//     constructors panic on meaningless input (nil RNG, nil IDFn).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrUnknownKind.
package builder
