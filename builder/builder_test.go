package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/builder"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/forest"
)

func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	for _, v := range g.Vertices() {
		assert.Equal(t, 3, g.Degree(v))
	}

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	g, err := builder.Wheel(3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.False(t, forest.IsForest(g))

	_, err = builder.Wheel(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestHangingTree(t *testing.T) {
	g, err := builder.HangingTree(3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	for _, v := range g.Vertices() {
		if v == 0 {
			continue
		}
		assert.Equal(t, 1, g.LoopCount(v))
	}
}

func TestExtendedHangingTree(t *testing.T) {
	g, err := builder.ExtendedHangingTree(2, 1, 1)
	require.NoError(t, err)
	// 2 looped leaves + 1 double-spoke looped leaf + 1 plain pendant + hub.
	assert.Equal(t, 5, g.VertexCount())

	_, err = builder.ExtendedHangingTree(1, -1, 0)
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestFriendship(t *testing.T) {
	g, err := builder.Friendship(2, 3)
	require.NoError(t, err)
	// Center + 2 petals * 2 fresh vertices each.
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	_, err = builder.Friendship(1, 2)
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestBalloonPath(t *testing.T) {
	g, err := builder.BalloonPath(3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount()) // root + 3 bulbs
	assert.Equal(t, 6, g.EdgeCount())   // 3 strings + 3 loops
}

func TestBalloonCycle(t *testing.T) {
	g, err := builder.BalloonCycle(3)
	require.NoError(t, err)
	assert.False(t, forest.IsForest(g))

	_, err = builder.BalloonCycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBalloonFamily(t *testing.T) {
	g, err := builder.BalloonFamily(2, 3)
	require.NoError(t, err)
	// Root + 3 branches * 2 bulbs each.
	assert.Equal(t, 7, g.VertexCount())
}

func TestHypercube(t *testing.T) {
	g, err := builder.Hypercube(3)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	for _, v := range g.Vertices() {
		assert.Equal(t, 3, g.Degree(v))
	}

	_, err = builder.Hypercube(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestDoubleNGon(t *testing.T) {
	g, err := builder.DoubleNGon(4)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())

	_, err = builder.DoubleNGon(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestLoopyStar(t *testing.T) {
	g, err := builder.LoopyStar(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	for _, v := range g.Vertices() {
		if v == 0 {
			continue
		}
		assert.Equal(t, 2, g.LoopCount(v))
	}

	_, err = builder.LoopyStar(3, 0)
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestPetersen(t *testing.T) {
	g, err := builder.Petersen()
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
	for _, v := range g.Vertices() {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.Grid(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	// Every vertex in a 2x2 grid sits on two boundaries, contributing two
	// loops, plus the two interior-facing edges shared with neighbors.
	for _, v := range g.Vertices() {
		assert.Equal(t, 4, g.Degree(v))
	}

	_, err = builder.Grid(0, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycleWithLoops(t *testing.T) {
	g, err := builder.CycleWithLoops(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.False(t, forest.IsForest(g))

	_, err = builder.CycleWithLoops(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n1,2\n0,2\n"), 0o600))

	g, err := builder.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestFromFile_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,not-a-number\n"), 0o600))

	_, err := builder.FromFile(path)
	assert.ErrorIs(t, err, builder.ErrFileFormat)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := builder.FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

// sanity check that builder output is usable by the rest of the module.
func TestBuilderOutputsAreValidMultigraphs(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)
	_, _, err = core.Cut(g, 0)
	require.NoError(t, err)
}
