package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Complete returns K(n): n vertices, one edge between every distinct pair.
// Requires n >= 1.
//
// Edges are emitted for i in 0..n-1, j in i+1..n-1.
func Complete(n int) (*core.Multigraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.EdgeRecord{U: i, V: j})
		}
	}

	return core.NewMultigraph(edges...), nil
}
