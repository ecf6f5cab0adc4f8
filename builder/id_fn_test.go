package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/builder"
	"github.com/katalvlaran/nullnet/core"
)

func TestIDFns(t *testing.T) {
	assert.Equal(t, core.NodeID(7), builder.DefaultIDFn(7))
	assert.Equal(t, core.NodeID(1), builder.OneBasedIDFn(0))

	stride := builder.StrideIDFn(100, 10)
	assert.Equal(t, core.NodeID(100), stride(0))
	assert.Equal(t, core.NodeID(130), stride(3))
	assert.Panics(t, func() { builder.StrideIDFn(0, 0) })
}

func TestIDSchemes_ApplyToConstructors(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOneBasedIDs()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, g.Nodes())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithIDOffset(50)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{50, 51, 52}, g.Nodes())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
