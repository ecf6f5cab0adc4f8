// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: construction from raw pairs and
//       read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// FromPairs builds a simple graph from raw (i,j) records in input order.
//
// Implementation:
//   - Stage 1: For each pair, drop it if i==j (counted as SelfLoops).
//   - Stage 2: Insert the canonical edge; if already present, count it as a
//     Duplicate (set semantics: repeated pairs collapse into one edge).
//   - Stage 3: Fail with ErrEmptyGraph if nothing survived.
//
// Behavior highlights:
//   - Nodes are registered in first-appearance order, which fixes the
//     iteration order of Nodes(), Components() and the tie-break of
//     LargestConnectedComponent().
//   - A node that only appears in self-loop records is not added.
//
// Returns:
//   - *Graph: the constructed graph.
//   - *BuildReport: counts of collapsed and dropped records (also on error).
//
// Errors:
//   - ErrEmptyGraph if zero edges remain.
//
// Complexity:
//   - Time O(P) amortized, Space O(V+E), P = len(pairs).
func FromPairs(pairs []Pair) (*Graph, *BuildReport, error) {
	report := &BuildReport{Pairs: len(pairs)}
	g := newGraphWithCapacity(len(pairs), len(pairs))

	var p Pair
	for _, p = range pairs {
		if p.I == p.J {
			report.SelfLoops++
			continue
		}
		if g.HasEdge(p.I, p.J) {
			report.Duplicates++
			continue
		}
		// Both checks above make AddEdge infallible here.
		_ = g.AddEdge(p.I, p.J)
	}

	if len(g.nodes) == 0 || len(g.edges) == 0 {
		return nil, report, ErrEmptyGraph
	}

	return g, report, nil
}

// FromEdges builds a graph from already-canonical edges, rejecting self-loops
// and duplicates instead of folding them.
//
// Errors:
//   - ErrSelfLoop, ErrDuplicateEdge from AddEdge (wrapped with the offending edge).
//
// Complexity: O(E) amortized.
func FromEdges(edges []Edge) (*Graph, error) {
	g := newGraphWithCapacity(len(edges), len(edges))
	var e Edge
	for _, e = range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, wrapEdge(e, err)
		}
	}

	return g, nil
}

// Stats produces a deterministic, read-only snapshot of sizes and degree
// extremes.
//
// Complexity: Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	if len(g.nodes) == 0 {
		return stats
	}

	stats.MinDegree = len(g.adj[g.nodes[0]])
	var (
		id NodeID
		d  int
	)
	for _, id = range g.nodes {
		d = len(g.adj[id])
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	stats.MeanDegree = 2 * float64(len(g.edges)) / float64(len(g.nodes))

	return stats
}
