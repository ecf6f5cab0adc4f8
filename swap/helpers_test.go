// SPDX-License-Identifier: MIT
// Package swap_test contains fixtures shared by the swap tests.

package swap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/builder"
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

// fromEdges builds a graph from flat pairs, keeping the given edge order.
func fromEdges(t testing.TB, ids ...core.NodeID) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		edges = append(edges, core.NewEdge(ids[i], ids[i+1]))
	}
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

// build runs builder constructors with a fixed seed.
func build(t testing.TB, seed int64, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)

	return g
}

// connectedRegular returns a connected random d-regular graph on n nodes.
func connectedRegular(t testing.TB, n, d int) *core.Graph {
	t.Helper()
	for seed := int64(1); seed < 64; seed++ {
		g := build(t, seed, builder.RandomRegular(n, d))
		if g.IsConnected() {
			return g
		}
	}
	t.Fatalf("no connected %d-regular graph on %d nodes in 63 seeds", d, n)

	return nil
}

// requireSimple asserts canonical, loop-free, duplicate-free edges whose
// endpoints agree with the adjacency degrees.
func requireSimple(t testing.TB, g *core.Graph) {
	t.Helper()
	seen := make(map[core.Edge]struct{}, g.EdgeCount())
	degree := make(map[core.NodeID]int, g.NodeCount())
	for _, e := range g.Edges() {
		require.Less(t, e.U, e.V, "edge %v must be canonical and loop-free", e)
		_, dup := seen[e]
		require.False(t, dup, "duplicate edge %v", e)
		seen[e] = struct{}{}
		degree[e.U]++
		degree[e.V]++
	}
	for _, id := range g.Nodes() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		require.Equal(t, degree[id], d, "degree of %d", id)
	}
}
