// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, ForEachNeighbor) and the private
//       neighbor-rewrite helper used by ApplySwap.
// Determinism:
//   - Neighbor order is insertion order, with swapped neighbors rewritten in place.

package core

import "fmt"

// Neighbors returns a copy of the neighbor IDs of id.
//
// Errors:
//   - ErrNodeNotFound if id is not a node.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// ForEachNeighbor calls fn for every neighbor of id without copying the
// adjacency slice. Iteration stops early when fn returns false.
// fn must not mutate g. Unknown ids have no neighbors.
//
// Complexity: O(deg(id)).
func (g *Graph) ForEachNeighbor(id NodeID, fn func(nbr NodeID) bool) {
	var nbr NodeID
	for _, nbr = range g.adj[id] {
		if !fn(nbr) {
			return
		}
	}
}

// replaceNeighbor rewrites the first occurrence of old in adj[u] to repl.
// Simple graphs hold old at most once, so this is the only occurrence.
func (g *Graph) replaceNeighbor(u, old, repl NodeID) {
	nbrs := g.adj[u]
	var i int
	for i = range nbrs {
		if nbrs[i] == old {
			nbrs[i] = repl

			return
		}
	}
}
