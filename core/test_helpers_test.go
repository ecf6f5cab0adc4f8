// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for nullnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Provide a scripted Rand so sampling paths are exercised exactly.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/core"
)

// scriptedRand replays a fixed sequence of Intn results (each taken mod n).
type scriptedRand struct {
	seq []int
	i   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++

	return v % n
}

// pairs converts a flat list i0,j0,i1,j1,... into raw pairs.
func pairs(ids ...core.NodeID) []core.Pair {
	out := make([]core.Pair, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		out = append(out, core.Pair{I: ids[i], J: ids[i+1]})
	}

	return out
}

// mustGraph builds a graph from flat pairs and fails the test on error.
func mustGraph(t testing.TB, ids ...core.NodeID) *core.Graph {
	t.Helper()
	g, _, err := core.FromPairs(pairs(ids...))
	require.NoError(t, err)

	return g
}

// cycle4 is the 4-cycle 1-2-3-4-1.
func cycle4(t testing.TB) *core.Graph {
	return mustGraph(t, 1, 2, 2, 3, 3, 4, 4, 1)
}

// ring builds the cycle 0-1-...-(n-1)-0.
func ring(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID((i+1)%n)))
	}

	return g
}

// requireSimple asserts the structural invariants of a simple graph.
func requireSimple(t testing.TB, g *core.Graph) {
	t.Helper()
	seen := make(map[core.Edge]struct{}, g.EdgeCount())
	degree := make(map[core.NodeID]int, g.NodeCount())
	for _, e := range g.Edges() {
		require.Less(t, e.U, e.V, "edge %v must be canonical and loop-free", e)
		_, dup := seen[e]
		require.False(t, dup, "duplicate edge %v", e)
		seen[e] = struct{}{}
		require.True(t, g.HasNode(e.U) && g.HasNode(e.V), "dangling edge %v", e)
		require.True(t, g.HasEdge(e.V, e.U), "HasEdge must be symmetric for %v", e)
		degree[e.U]++
		degree[e.V]++
	}
	for _, id := range g.Nodes() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		require.Equal(t, degree[id], d, "degree of %d disagrees with edge list", id)
	}
}
