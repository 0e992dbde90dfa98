package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// HangingTree returns a central hub vertex 0 joined to nLeaves leaves, each
// leaf carrying its own self-loop. Requires nLeaves >= 1.
//
// A star whose outer vertices each hang one self-loop edge, so that
// cutting a leaf's spoke leaves an isolated looped vertex rather than a
// bare isolated vertex.
func HangingTree(nLeaves int) (*core.Multigraph, error) {
	if nLeaves < 1 {
		return nil, fmt.Errorf("HangingTree: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 2*nLeaves)
	for i := 1; i <= nLeaves; i++ {
		edges = append(edges, core.EdgeRecord{U: 0, V: i}, core.EdgeRecord{U: i, V: i})
	}

	return core.NewMultigraph(edges...), nil
}

// ExtendedHangingTree returns a HangingTree(nLeaves) extended with
// extraSpokes additional looped leaves that hang two spokes to the hub
// instead of one (a double-spoke leaf, costing the hub two cuts to
// disconnect), and extraVertices additional unlooped pendant leaves (a
// bare spoke, no loop).
//
// Requires nLeaves >= 1; extraSpokes and extraVertices must each be >= 0.
//
// Augments the base hanging tree with both a double-spoke looped variant
// and a plain pendant variant rather than introducing an unrelated fourth
// topology.
func ExtendedHangingTree(nLeaves, extraSpokes, extraVertices int) (*core.Multigraph, error) {
	if nLeaves < 1 {
		return nil, fmt.Errorf("ExtendedHangingTree: %w", ErrTooFewVertices)
	}
	if extraSpokes < 0 || extraVertices < 0 {
		return nil, fmt.Errorf("ExtendedHangingTree: %w", ErrInvalidParameter)
	}

	edges := make([]core.EdgeRecord, 0, 2*nLeaves+3*extraSpokes+extraVertices)
	next := 1
	for i := 0; i < nLeaves; i++ {
		v := next
		next++
		edges = append(edges, core.EdgeRecord{U: 0, V: v}, core.EdgeRecord{U: v, V: v})
	}
	for i := 0; i < extraSpokes; i++ {
		v := next
		next++
		edges = append(edges,
			core.EdgeRecord{U: 0, V: v}, core.EdgeRecord{U: 0, V: v}, core.EdgeRecord{U: v, V: v})
	}
	for i := 0; i < extraVertices; i++ {
		v := next
		next++
		edges = append(edges, core.EdgeRecord{U: 0, V: v})
	}

	return core.NewMultigraph(edges...), nil
}
