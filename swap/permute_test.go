// SPDX-License-Identifier: MIT
// Package swap_test checks the Permute contract: degree and edge-count
// invariance, the accepted-swap guarantee, connectivity, determinism and
// the failure modes.

package swap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/builder"
	"github.com/katalvlaran/nullnet/core"
	"github.com/katalvlaran/nullnet/swap"
)

func TestPermute_PreservesDegreesAndEdgeCount(t *testing.T) {
	for _, mode := range []swap.Mode{swap.ConnectivityPreserving, swap.Unconstrained} {
		t.Run(mode.String(), func(t *testing.T) {
			g := connectedRegular(t, 40, 4)
			before := g.DegreeSequence()
			m := g.EdgeCount()

			res, err := swap.Permute(g, 2*m, swap.WithMode(mode), swap.WithSeed(11))
			require.NoError(t, err)
			assert.Same(t, g, res.Graph)
			assert.Equal(t, m, g.EdgeCount())
			assert.Equal(t, before, g.DegreeSequence())
			requireSimple(t, g)
		})
	}
}

func TestPermute_ConnectedGuarantees(t *testing.T) {
	g := build(t, 5, builder.RandomSparse(60, 0.08))
	lcc, _ := g.LargestConnectedComponent()
	minimum := lcc.EdgeCount()

	res, err := swap.Permute(lcc, minimum, swap.WithSeed(3), swap.WithBatchFloor(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Accepted, minimum)
	assert.GreaterOrEqual(t, res.Attempted, res.Accepted)
	assert.GreaterOrEqual(t, res.Batches, 1)
	assert.True(t, lcc.IsConnected())
	requireSimple(t, lcc)

	rejected := 0
	for _, n := range res.Rejected {
		rejected += n
	}
	assert.Equal(t, res.Attempted, res.Accepted+rejected)
}

func TestPermute_BatchFloorRaisesSmallTargets(t *testing.T) {
	g := connectedRegular(t, 30, 4)

	res, err := swap.Permute(g, 5, swap.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Batches)
	assert.GreaterOrEqual(t, res.Accepted, swap.DefaultBatchFloor)
}

func TestPermute_Deterministic(t *testing.T) {
	g1 := connectedRegular(t, 40, 4)
	g2 := g1.Clone()
	g3 := g1.Clone()

	_, err := swap.Permute(g1, 200, swap.WithSeed(9))
	require.NoError(t, err)
	_, err = swap.Permute(g2, 200, swap.WithSeed(9))
	require.NoError(t, err)
	_, err = swap.Permute(g3, 200, swap.WithSeed(10))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.NotEqual(t, g1.Edges(), g3.Edges())
}

func TestPermute_UnconstrainedExactAttempts(t *testing.T) {
	g := build(t, 2, builder.Cycle(12), builder.Offset(12, builder.Cycle(5)))
	calls := 0

	res, err := swap.Permute(g, 250,
		swap.WithMode(swap.Unconstrained),
		swap.WithSeed(4),
		swap.WithOnAttempt(func(swap.Outcome) { calls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 250, res.Attempted)
	assert.Equal(t, 250, calls)
	assert.GreaterOrEqual(t, res.Draws, res.Attempted)
	assert.LessOrEqual(t, res.Accepted, 250)
	assert.Zero(t, res.Batches)
	assert.Zero(t, res.Rejected[swap.Disconnect])
	requireSimple(t, g)
}

func TestPermute_UnconstrainedHubProposesEveryAttempt(t *testing.T) {
	// Most pairs drawn from a 40-leaf star share the hub; those are redrawn,
	// so every one of the 1000 attempts still proposes a rewiring.
	g := build(t, 1, builder.Star(41), builder.Offset(100, builder.Cycle(4)))
	before := g.DegreeSequence()
	proposed := 0

	res, err := swap.Permute(g, 1000,
		swap.WithMode(swap.Unconstrained),
		swap.WithSeed(3),
		swap.WithOnAttempt(func(o swap.Outcome) {
			a, b := o.Removed[0], o.Removed[1]
			if !a.Has(b.U) && !a.Has(b.V) {
				proposed++
			}
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1000, res.Attempted)
	assert.Equal(t, 1000, proposed)
	assert.Greater(t, res.Draws, res.Attempted, "hub pairs must have been redrawn")
	assert.Equal(t, res.Attempted, res.Accepted+res.Rejected[swap.Duplicate])
	assert.Zero(t, res.Rejected[swap.Disconnect])
	assert.Equal(t, before, g.DegreeSequence())
	requireSimple(t, g)
}

func TestPermute_Cycle4StaysCycle4(t *testing.T) {
	g := cycle4(t)

	res, err := swap.Permute(g, 1, swap.WithSeed(21), swap.WithBatchFloor(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 4, g.EdgeCount())
	for _, id := range g.Nodes() {
		d, _ := g.Degree(id)
		assert.Equal(t, 2, d, "node %d", id)
	}
	assert.True(t, g.IsConnected())
}

func TestPermute_NoDisjointEdgesExhausts(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"triangle", builder.Cycle(3)},
		{"star", builder.Star(6)},
		{"single edge", builder.Path(2)},
	}
	for _, tc := range tests {
		for _, mode := range []swap.Mode{swap.ConnectivityPreserving, swap.Unconstrained} {
			t.Run(tc.name+"/"+mode.String(), func(t *testing.T) {
				g := build(t, 1, tc.ctor)
				before := g.Edges()

				res, err := swap.Permute(g, 3, swap.WithSeed(1), swap.WithMode(mode))
				require.ErrorIs(t, err, swap.ErrSwapExhaustion)
				require.NotNil(t, res)
				assert.Zero(t, res.Accepted)
				assert.Zero(t, res.Draws)
				assert.Equal(t, before, g.Edges())
			})
		}
	}
}

func TestPermute_CeilingExhausts(t *testing.T) {
	// K4: every disjoint pair rewires onto existing edges.
	g := build(t, 1, builder.Complete(4))
	before := g.Edges()

	res, err := swap.Permute(g, 1, swap.WithSeed(1), swap.WithMaxAttempts(500))
	require.ErrorIs(t, err, swap.ErrSwapExhaustion)
	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.Draws, 500)
	assert.Positive(t, res.Attempted)
	assert.Less(t, res.Attempted, res.Draws)
	assert.Zero(t, res.Accepted)
	assert.Equal(t, res.Attempted, res.Rejected[swap.Duplicate])
	assert.Equal(t, before, g.Edges())
}

func TestPermute_ZeroMinimumIsNoop(t *testing.T) {
	g := build(t, 1, builder.Cycle(3))
	before := g.Edges()

	res, err := swap.Permute(g, 0)
	require.NoError(t, err)
	assert.Zero(t, res.Attempted)
	assert.Equal(t, before, g.Edges())
}

func TestPermute_EmptyGraphFailsEvenForZeroMinimum(t *testing.T) {
	_, err := swap.Permute(core.NewGraph(), 0)
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	isolated := core.NewGraph()
	isolated.AddNode(1)
	isolated.AddNode(2)
	_, err = swap.Permute(isolated, 0, swap.WithMode(swap.Unconstrained))
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = swap.Permute(isolated, 5)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestPermute_Errors(t *testing.T) {
	_, err := swap.Permute(nil, 1)
	require.ErrorIs(t, err, swap.ErrNilGraph)

	_, err = swap.Permute(cycle4(t), -1)
	require.ErrorIs(t, err, swap.ErrNegativeMinimum)

	split := build(t, 1, builder.Cycle(10), builder.Offset(10, builder.Cycle(3)))
	_, err = swap.Permute(split, 1)
	require.ErrorIs(t, err, swap.ErrDisconnected)

	for name, opt := range map[string]swap.Option{
		"nil rand":      swap.WithRand(nil),
		"zero attempts": swap.WithMaxAttempts(0),
		"zero floor":    swap.WithBatchFloor(0),
		"unknown mode":  swap.WithMode(swap.Mode(3)),
	} {
		_, err = swap.Permute(cycle4(t), 1, opt)
		require.ErrorIs(t, err, swap.ErrOptionViolation, name)
	}
}

func TestPermute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := swap.Permute(connectedRegular(t, 20, 4), 10, swap.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Attempted)
}

func TestPermute_DefaultSeedIsFixed(t *testing.T) {
	g1 := connectedRegular(t, 20, 4)
	g2 := g1.Clone()

	_, err := swap.Permute(g1, 50)
	require.NoError(t, err)
	_, err = swap.Permute(g2, 50)
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestPermute_WithRandInterface(t *testing.T) {
	// Any core.Rand works; this one replays the accepting cycle4 draws.
	g := cycle4(t)
	res, err := swap.Permute(g, 1, swap.WithRand(&scriptedRand{seq: []int{0, 2, 1}}), swap.WithBatchFloor(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempted)
	assert.ElementsMatch(t, []core.Edge{{U: 1, V: 3}, {U: 2, V: 3}, {U: 2, V: 4}, {U: 1, V: 4}}, g.Edges())
}
