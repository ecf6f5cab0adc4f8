// SPDX-License-Identifier: MIT
// Package core defines the central Graph, NodeID and Edge types for simple
// undirected networks, and the primitives the swap engine relies on.
//
// This file declares NodeID, Edge, Pair, Graph, the Rand source contract,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrSelfLoop       - edge endpoints are identical.
//	ErrDuplicateEdge  - the unordered pair is already present.
//	ErrEmptyGraph     - zero nodes or zero edges where a non-empty graph is required.
//	ErrNilRand        - a nil random source was supplied to a sampling method.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered pair {u,v} is already an edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrEmptyGraph indicates a graph with no nodes or no edges.
	ErrEmptyGraph = errors.New("core: graph has no nodes or no edges")

	// ErrNilRand indicates a sampling method was called without a random source.
	ErrNilRand = errors.New("core: random source is nil")
)

// NodeID identifies a node. Identifiers are opaque; only equality and
// ordering (for edge canonicalization) are used.
type NodeID int64

// Edge is an undirected edge in canonical form: U < V.
// Use NewEdge to build one from an arbitrary pair; the canonical form makes
// {u,v} and {v,u} the same map key.
type Edge struct {
	U NodeID
	V NodeID
}

// NewEdge returns the canonical Edge for the unordered pair {u,v}.
// A self-loop (u==v) is returned as-is; callers validate it.
func NewEdge(u, v NodeID) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to x.
// The result is undefined when x is not an endpoint of e.
func (e Edge) Other(x NodeID) NodeID {
	if e.U == x {
		return e.V
	}

	return e.U
}

// Has reports whether x is an endpoint of e.
func (e Edge) Has(x NodeID) bool { return e.U == x || e.V == x }

// Pair is a raw (i, j) record as read from an edge list, before any
// canonicalization, deduplication or self-loop filtering.
type Pair struct {
	I NodeID
	J NodeID
}

// Rand is the random source consumed by sampling methods.
// *math/rand.Rand satisfies it; tests may inject scripted sources.
type Rand interface {
	// Intn returns a uniformly distributed integer in [0,n). n > 0.
	Intn(n int) int
}

// Graph is a simple undirected graph: no self-loops, no parallel edges.
//
// Storage:
//   - nodes: node IDs in first-insertion order (deterministic iteration).
//   - adj:   node → neighbor slice; len(adj[u]) is the degree of u.
//   - edges: dense edge slice; enables O(1) uniform edge sampling.
//   - pos:   canonical edge → index in edges; enables O(1) HasEdge and in-place swaps.
//
// Concurrency: a Graph has a single owner. It holds no locks; concurrent
// mutation is a data race. Independent runs use independent Graph instances.
type Graph struct {
	nodes []NodeID
	adj   map[NodeID][]NodeID
	edges []Edge
	pos   map[Edge]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[NodeID][]NodeID),
		pos: make(map[Edge]int),
	}
}

// newGraphWithCapacity preallocates storage for n nodes and m edges.
func newGraphWithCapacity(n, m int) *Graph {
	return &Graph{
		nodes: make([]NodeID, 0, n),
		adj:   make(map[NodeID][]NodeID, n),
		edges: make([]Edge, 0, m),
		pos:   make(map[Edge]int, m),
	}
}

// BuildReport describes how raw input pairs were folded into a simple graph.
type BuildReport struct {
	// Pairs is the number of raw records supplied.
	Pairs int
	// Duplicates counts records that repeated an existing unordered pair and were collapsed.
	Duplicates int
	// SelfLoops counts records with identical endpoints, which were dropped.
	SelfLoops int
}

// Reduction describes what LargestConnectedComponent removed.
type Reduction struct {
	// Components is the number of connected components in the source graph.
	Components int
	// DroppedNodes is the number of nodes outside the kept component.
	DroppedNodes int
	// DroppedEdges is the number of edges outside the kept component.
	DroppedEdges int
}

// Reduced reports whether anything was removed.
func (r Reduction) Reduced() bool { return r.DroppedNodes > 0 || r.DroppedEdges > 0 }

// GraphStats is a read-only snapshot of size and degree statistics.
type GraphStats struct {
	NodeCount int
	EdgeCount int
	MinDegree int
	MaxDegree int
	// MeanDegree is 2|E|/|V|, zero for an empty graph.
	MeanDegree float64
}
