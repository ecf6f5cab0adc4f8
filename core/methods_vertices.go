// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries: AddNode/HasNode/Nodes/NodeCount/Degree,
//       DegreeSequence and uniform node sampling.
// Determinism:
//   - Nodes() returns IDs in first-insertion order.
//   - RandomNode consumes exactly one Intn draw.

package core

import "fmt"

// AddNode inserts node id if absent. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.nodes = append(g.nodes, id)
	g.adj[id] = nil
}

// HasNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.adj[id]

	return ok
}

// Nodes returns a copy of all node IDs in first-insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNodeNotFound if id is not a node.
//
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("core: Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// DegreeSequence returns the degree of every node.
// The map is a fresh copy; the caller may mutate it.
// Complexity: O(V).
func (g *Graph) DegreeSequence() map[NodeID]int {
	out := make(map[NodeID]int, len(g.nodes))
	var id NodeID
	for _, id = range g.nodes {
		out[id] = len(g.adj[id])
	}

	return out
}

// RandomNode returns a node chosen uniformly at random.
//
// Errors:
//   - ErrNilRand if r is nil.
//   - ErrEmptyGraph if g has no nodes.
//
// Complexity: O(1).
func (g *Graph) RandomNode(r Rand) (NodeID, error) {
	if r == nil {
		return 0, ErrNilRand
	}
	if len(g.nodes) == 0 {
		return 0, ErrEmptyGraph
	}

	return g.nodes[r.Intn(len(g.nodes))], nil
}
