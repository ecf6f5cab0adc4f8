// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connectivity queries: Components, IsConnected, LargestConnectedComponent.
// Determinism:
//   - Components are discovered by BFS seeded in node insertion order, and
//     each component lists its nodes in BFS visit order.

package core

// Components returns the connected components of g.
// Each component is a slice of node IDs; components appear in the order
// their first node was inserted into g.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *Graph) Components() [][]NodeID {
	seen := make(map[NodeID]struct{}, len(g.nodes))
	var comps [][]NodeID

	var (
		start NodeID
		ok    bool
	)
	for _, start = range g.nodes {
		if _, ok = seen[start]; ok {
			continue
		}
		// BFS to collect component
		queue := []NodeID{start}
		seen[start] = struct{}{}
		for qi := 0; qi < len(queue); qi++ {
			for _, nbr := range g.adj[queue[qi]] {
				if _, ok = seen[nbr]; !ok {
					seen[nbr] = struct{}{}
					queue = append(queue, nbr)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// IsConnected reports whether every node is reachable from every other.
// The empty graph is not connected; a single node is.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return false
	}

	seen := make(map[NodeID]struct{}, len(g.nodes))
	queue := make([]NodeID, 0, len(g.nodes))
	queue = append(queue, g.nodes[0])
	seen[g.nodes[0]] = struct{}{}
	var ok bool
	for qi := 0; qi < len(queue); qi++ {
		for _, nbr := range g.adj[queue[qi]] {
			if _, ok = seen[nbr]; !ok {
				seen[nbr] = struct{}{}
				queue = append(queue, nbr)
			}
		}
	}

	return len(seen) == len(g.nodes)
}

// LargestConnectedComponent returns the subgraph induced by the component
// with the most nodes, plus a Reduction describing what was dropped.
//
// Policy:
//   - Ties are broken by discovery order: the component containing the
//     earliest-inserted node wins.
//   - When g is already connected the returned graph is a Clone of g and
//     the Reduction reports nothing dropped.
//   - An empty g yields an empty graph.
//
// Complexity: O(V + E).
func (g *Graph) LargestConnectedComponent() (*Graph, Reduction) {
	comps := g.Components()
	red := Reduction{Components: len(comps)}
	if len(comps) <= 1 {
		return g.Clone(), red
	}

	best := 0
	var i int
	for i = 1; i < len(comps); i++ {
		if len(comps[i]) > len(comps[best]) {
			best = i
		}
	}

	sub := InducedSubgraph(g, comps[best])
	red.DroppedNodes = len(g.nodes) - sub.NodeCount()
	red.DroppedEdges = len(g.edges) - sub.EdgeCount()

	return sub, red
}
