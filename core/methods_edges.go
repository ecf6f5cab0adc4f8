// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount,
//       uniform edge sampling, and the double-edge swap primitive.
// Determinism:
//   - Edges() returns edges in slot order: insertion order, with swapped
//     edges taking over the slots of the edges they replaced.
//   - RandomEdge consumes exactly one Intn draw.

package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}, registering missing endpoints.
//
// Errors:
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if {u,v} already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v {
		return ErrSelfLoop
	}
	e := NewEdge(u, v)
	if _, ok := g.pos[e]; ok {
		return ErrDuplicateEdge
	}

	g.AddNode(u)
	g.AddNode(v)
	g.pos[e] = len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// HasEdge reports whether {u,v} is an edge. Argument order is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.pos[NewEdge(u, v)]

	return ok
}

// Edges returns a copy of all edges in slot order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RandomEdge returns an edge chosen uniformly at random.
//
// Errors:
//   - ErrNilRand if r is nil.
//   - ErrEmptyGraph if g has no edges.
//
// Complexity: O(1).
func (g *Graph) RandomEdge(r Rand) (Edge, error) {
	if r == nil {
		return Edge{}, ErrNilRand
	}
	if len(g.edges) == 0 {
		return Edge{}, ErrEmptyGraph
	}

	return g.edges[r.Intn(len(g.edges))], nil
}

// CanSwap reports whether replacing {a,b},{c,d} by {a,d},{c,b} is legal:
// both originals exist, the four endpoints are distinct, and neither
// replacement already exists.
//
// Complexity: O(1).
func (g *Graph) CanSwap(a, b, c, d NodeID) bool {
	if a == b || a == c || a == d || b == c || b == d || c == d {
		return false
	}
	if !g.HasEdge(a, b) || !g.HasEdge(c, d) {
		return false
	}

	return !g.HasEdge(a, d) && !g.HasEdge(c, b)
}

// ApplySwap removes {a,b} and {c,d} and adds {a,d} and {c,b}.
//
// Contract:
//   - The caller must have validated the swap (see CanSwap). ApplySwap does
//     not re-check; applying an invalid swap corrupts the graph.
//   - Every endpoint keeps its degree.
//   - ApplySwap(a, d, c, b) is the exact inverse.
//
// Behavior highlights:
//   - The new edges take over the slots of the removed ones, so EdgeCount
//     and slot order are otherwise unchanged.
//
// Complexity: O(deg(a)+deg(b)+deg(c)+deg(d)) for the neighbor rewrites; O(1) edge bookkeeping.
func (g *Graph) ApplySwap(a, b, c, d NodeID) {
	ab, cd := NewEdge(a, b), NewEdge(c, d)
	ad, cb := NewEdge(a, d), NewEdge(c, b)

	i, j := g.pos[ab], g.pos[cd]
	delete(g.pos, ab)
	delete(g.pos, cd)
	g.edges[i], g.edges[j] = ad, cb
	g.pos[ad], g.pos[cb] = i, j

	g.replaceNeighbor(a, b, d)
	g.replaceNeighbor(b, a, c)
	g.replaceNeighbor(c, d, b)
	g.replaceNeighbor(d, c, a)
}

// wrapEdge attaches the edge to an error for context.
func wrapEdge(e Edge, err error) error {
	return fmt.Errorf("core: edge {%d,%d}: %w", e.U, e.V, err)
}
