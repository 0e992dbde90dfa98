package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// balloonUnit appends one balloon to edges: a bulb vertex carrying a
// self-loop, joined by a single edge to a string vertex. The bulb takes id
// next; it returns the next unused vertex id (next+1), so callers find the
// bulb just placed at the returned value minus one.
func balloonUnit(edges []core.EdgeRecord, stringVertex, next int) ([]core.EdgeRecord, int) {
	bulb := next
	next++
	edges = append(edges, core.EdgeRecord{U: stringVertex, V: bulb}, core.EdgeRecord{U: bulb, V: bulb})

	return edges, next
}

// BalloonPath returns n balloons (a looped bulb vertex on a string vertex)
// chained string-to-bulb into an open path. Requires n >= 1.
func BalloonPath(n int) (*core.Multigraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("BalloonPath: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 3*n)
	next := 1
	cur := 0
	for i := 0; i < n; i++ {
		edges, next = balloonUnit(edges, cur, next)
		cur = next - 1 // the bulb just placed becomes the next unit's string vertex
	}

	return core.NewMultigraph(edges...), nil
}

// BalloonCycle returns n balloons chained as BalloonPath does, with the
// final bulb additionally joined back to the first string vertex, closing
// the chain into a cycle. Requires n >= 3 so the closing edge is not a
// duplicate of the first unit's own edge.
func BalloonCycle(n int) (*core.Multigraph, error) {
	if n < 3 {
		return nil, fmt.Errorf("BalloonCycle: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 3*n+1)
	next := 1
	first := 0
	cur := 0
	for i := 0; i < n; i++ {
		edges, next = balloonUnit(edges, cur, next)
		cur = next - 1
	}
	edges = append(edges, core.EdgeRecord{U: cur, V: first})

	return core.NewMultigraph(edges...), nil
}

// BalloonFamily returns k independent chains of n balloons each, radiating
// from a shared root vertex 0. Requires n >= 1 and k >= 1.
func BalloonFamily(n, k int) (*core.Multigraph, error) {
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("BalloonFamily: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, k*(3*n))
	next := 1
	for branch := 0; branch < k; branch++ {
		cur := 0
		for i := 0; i < n; i++ {
			edges, next = balloonUnit(edges, cur, next)
			cur = next - 1
		}
	}

	return core.NewMultigraph(edges...), nil
}
