// SPDX-License-Identifier: MIT
// Package core_test verifies edge canonicalization and raw-pair folding.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/core"
)

func TestNewEdge_Canonical(t *testing.T) {
	assert.Equal(t, core.Edge{U: 1, V: 2}, core.NewEdge(2, 1))
	assert.Equal(t, core.NewEdge(1, 2), core.NewEdge(2, 1))
	assert.Equal(t, core.Edge{U: -5, V: 3}, core.NewEdge(3, -5))

	e := core.NewEdge(7, 4)
	assert.Equal(t, core.NodeID(7), e.Other(4))
	assert.Equal(t, core.NodeID(4), e.Other(7))
	assert.True(t, e.Has(4))
	assert.False(t, e.Has(5))
}

func TestFromPairs_CollapsesDuplicatesAndDropsLoops(t *testing.T) {
	g, report, err := core.FromPairs(pairs(
		1, 2,
		2, 1, // duplicate in reverse orientation
		2, 3,
		3, 3, // self-loop
		1, 2, // duplicate
		9, 9, // self-loop on an otherwise unseen node
	))
	require.NoError(t, err)

	assert.Equal(t, 6, report.Pairs)
	assert.Equal(t, 2, report.Duplicates)
	assert.Equal(t, 2, report.SelfLoops)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.NodeID{1, 2, 3}, g.Nodes(), "first-appearance order; 9 never registered")
	requireSimple(t, g)
}

func TestFromPairs_Empty(t *testing.T) {
	_, report, err := core.FromPairs(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Equal(t, 0, report.Pairs)

	_, report, err = core.FromPairs(pairs(4, 4, 5, 5))
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Equal(t, 2, report.SelfLoops)
}

func TestFromEdges_RejectsInvalid(t *testing.T) {
	_, err := core.FromEdges([]core.Edge{{U: 1, V: 2}, {U: 1, V: 2}})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = core.FromEdges([]core.Edge{{U: 3, V: 3}})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	g, err := core.FromEdges([]core.Edge{{U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestStats(t *testing.T) {
	g := mustGraph(t, 1, 2, 1, 3, 1, 4)
	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 1, s.MinDegree)
	assert.Equal(t, 3, s.MaxDegree)
	assert.InDelta(t, 1.5, s.MeanDegree, 1e-12)

	assert.Equal(t, core.GraphStats{}, core.NewGraph().Stats())
}
