// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves node order, edge slot order and neighbor order, so a
//     clone driven by the same random stream evolves identically.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := newGraphWithCapacity(len(g.nodes), len(g.edges))
	clone.nodes = append(clone.nodes, g.nodes...)
	clone.edges = append(clone.edges, g.edges...)

	var (
		id NodeID
		e  Edge
		i  int
	)
	for _, id = range g.nodes {
		nbrs := g.adj[id]
		cp := make([]NodeID, len(nbrs))
		copy(cp, nbrs)
		clone.adj[id] = cp
	}
	for e, i = range g.pos {
		clone.pos[e] = i
	}

	return clone
}
