package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/canon"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

func TestFingerprint_IsomorphicGraphsMatch(t *testing.T) {
	triangleA := core.NewMultigraph(
		core.EdgeRecord{U: 0, V: 1},
		core.EdgeRecord{U: 1, V: 2},
		core.EdgeRecord{U: 0, V: 2},
	)
	triangleB := core.NewMultigraph(
		core.EdgeRecord{U: 7, V: 9},
		core.EdgeRecord{U: 9, V: 5},
		core.EdgeRecord{U: 7, V: 5},
	)

	assert.Equal(t, canon.Fingerprint(triangleA), canon.Fingerprint(triangleB))
}

func TestFingerprint_NonIsomorphicGraphsDiffer(t *testing.T) {
	star := core.NewMultigraph(
		core.EdgeRecord{U: 0, V: 1},
		core.EdgeRecord{U: 0, V: 2},
		core.EdgeRecord{U: 0, V: 3},
	)
	path := core.NewMultigraph(
		core.EdgeRecord{U: 0, V: 1},
		core.EdgeRecord{U: 1, V: 2},
		core.EdgeRecord{U: 2, V: 3},
	)

	assert.NotEqual(t, canon.Fingerprint(star), canon.Fingerprint(path))
}

func TestFingerprint_SelfLoopRelabeling(t *testing.T) {
	a := core.NewMultigraph(core.EdgeRecord{U: 0, V: 0}, core.EdgeRecord{U: 0, V: 1})
	b := core.NewMultigraph(core.EdgeRecord{U: 9, V: 9}, core.EdgeRecord{U: 9, V: 4})

	assert.Equal(t, canon.Fingerprint(a), canon.Fingerprint(b))
}

func TestFingerprint_ParallelEdgesPreserveMultiplicity(t *testing.T) {
	single := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1})
	double := core.NewMultigraph(core.EdgeRecord{U: 0, V: 1}, core.EdgeRecord{U: 0, V: 1})

	assert.NotEqual(t, canon.Fingerprint(single), canon.Fingerprint(double))
}

func TestFingerprint_Deterministic(t *testing.T) {
	g := core.NewMultigraph(
		core.EdgeRecord{U: 0, V: 1},
		core.EdgeRecord{U: 1, V: 2},
		core.EdgeRecord{U: 2, V: 3},
		core.EdgeRecord{U: 3, V: 0},
	)
	assert.Equal(t, canon.Fingerprint(g), canon.Fingerprint(g))
}

func TestLabel_EmptyGraph(t *testing.T) {
	assert.Empty(t, canon.Label(core.NewMultigraph()))
}

func TestLabel_ProducesPermutation(t *testing.T) {
	g := core.NewMultigraph(
		core.EdgeRecord{U: 10, V: 20},
		core.EdgeRecord{U: 20, V: 30},
		core.EdgeRecord{U: 30, V: 10},
	)
	labels := canon.Label(g)
	assert.Len(t, labels, 3)

	seen := make(map[int]bool)
	for _, id := range labels {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, 3)
		assert.False(t, seen[id], "canonical ids must be unique")
		seen[id] = true
	}
}
