// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Node order and edge slot order follow the source graph, filtered.

package core

// InducedSubgraph returns a new Graph holding the nodes in keep and every
// edge of g with both endpoints in keep. g is not mutated. IDs in keep that
// are not nodes of g are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep []NodeID) *Graph {
	in := make(map[NodeID]struct{}, len(keep))
	var id NodeID
	for _, id = range keep {
		if g.HasNode(id) {
			in[id] = struct{}{}
		}
	}

	out := newGraphWithCapacity(len(in), 0)
	var ok bool
	for _, id = range g.nodes {
		if _, ok = in[id]; ok {
			out.AddNode(id)
		}
	}
	var (
		e   Edge
		okU bool
		okV bool
	)
	for _, e = range g.edges {
		_, okU = in[e.U]
		_, okV = in[e.V]
		if okU && okV {
			// Source edges are simple and unique, so AddEdge cannot fail.
			_ = out.AddEdge(e.U, e.V)
		}
	}

	return out
}
