// Package core provides a compact in-memory simple graph tuned for
// degree-preserving edge swaps.
//
// The Graph G = (V,E) is undirected and unweighted, with no self-loops and
// no parallel edges. Edges are stored in canonical form {U<V}, which makes
// duplicate and loop detection unambiguous:
//
//   - Node order is first-insertion order: Nodes(), Components() and the
//     tie-break of LargestConnectedComponent() are deterministic.
//   - Edges live in a dense slice indexed by a canonical-key map, giving O(1)
//     HasEdge and O(1) uniform RandomEdge.
//   - ApplySwap rewrites two edge slots and four neighbor entries in place;
//     every endpoint keeps its degree.
//
// Why use core.Graph?
//
//   - One type, one policy: simple undirected graphs only.
//   - Deterministic iteration everywhere, so a seeded run is reproducible
//     byte for byte.
//   - No locks: a Graph has a single owner for the duration of a run;
//     parallel runs use independent instances.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	FromPairs(pairs []Pair) (*Graph, *BuildReport, error) // duplicates collapse, loops dropped
//	FromEdges(edges []Edge) (*Graph, error)               // strict
//
//	// Nodes
//	AddNode(id NodeID)                    // O(1)
//	HasNode(id NodeID) bool               // O(1)
//	Degree(id NodeID) (int, error)        // O(1)
//	RandomNode(r Rand) (NodeID, error)    // O(1)
//
//	// Edges
//	AddEdge(u, v NodeID) error            // O(1)
//	HasEdge(u, v NodeID) bool             // O(1)
//	RandomEdge(r Rand) (Edge, error)      // O(1)
//	CanSwap(a, b, c, d NodeID) bool       // O(1)
//	ApplySwap(a, b, c, d NodeID)          // unchecked; O(sum of endpoint degrees)
//
//	// Connectivity
//	Components() [][]NodeID               // O(V+E)
//	IsConnected() bool                    // O(V+E)
//	LargestConnectedComponent() (*Graph, Reduction)
//
// Errors:
//
//	ErrNodeNotFound  – missing node
//	ErrSelfLoop      – u == v
//	ErrDuplicateEdge – {u,v} already present
//	ErrEmptyGraph    – no nodes or no edges
//	ErrNilRand       – nil random source
package core
