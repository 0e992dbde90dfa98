package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

func TestNewMultigraph_EmptyIsEmpty(t *testing.T) {
	g := core.NewMultigraph()
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Vertices())
}

func TestMultigraph_DegreeAndVertices(t *testing.T) {
	// Triangle 0-1-2 plus a self-loop on 0.
	g := core.NewMultigraph(
		core.EdgeRecord{U: 0, V: 1},
		core.EdgeRecord{U: 1, V: 2},
		core.EdgeRecord{U: 0, V: 2},
		core.EdgeRecord{U: 0, V: 0},
	)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 2}, g.Vertices())
	assert.Equal(t, 3, g.Degree(0)) // two triangle edges + one loop-record
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.LoopCount(0))
	assert.True(t, g.ContainsVertex(1))
	assert.False(t, g.ContainsVertex(99))
}

func TestMultigraph_RemoveEdge_DropsIsolatedVertex(t *testing.T) {
	g := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1})

	next, err := g.RemoveEdge(0)
	require.NoError(t, err)
	assert.Equal(t, 0, next.EdgeCount())
	assert.False(t, next.ContainsVertex(0))
	assert.False(t, next.ContainsVertex(1))

	// Receiver is untouched.
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.ContainsVertex(0))
}

func TestMultigraph_RemoveEdge_OutOfRange(t *testing.T) {
	g := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1})
	_, err := g.RemoveEdge(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrEdgeIndexOutOfRange))
}

func TestMultigraph_Clone_IsIndependent(t *testing.T) {
	g := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1}, core.EdgeRecord{U: 1, V: 2})
	clone := g.Clone()
	_, err := clone.RemoveEdge(0)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
}

func TestMultigraph_ParallelEdgesAreDistinct(t *testing.T) {
	g := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1}, core.EdgeRecord{U: 0, V: 1})
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(0))

	next, err := g.RemoveEdge(0)
	require.NoError(t, err)
	assert.Equal(t, 1, next.EdgeCount())
	assert.True(t, next.ContainsVertex(0))
	assert.True(t, next.ContainsVertex(1))
}

func TestEdgeRecord_NormalizedAndIsLoop(t *testing.T) {
	assert.Equal(t, core.EdgeRecord{U: 1, V: 2}, core.EdgeRecord{U: 2, V: 1}.Normalized())
	assert.True(t, core.EdgeRecord{U: 3, V: 3}.IsLoop())
	assert.False(t, core.EdgeRecord{U: 3, V: 4}.IsLoop())
}
