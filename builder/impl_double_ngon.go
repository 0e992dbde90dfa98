package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// DoubleNGon returns two disjoint n-cycles (vertices 0..n-1 and n..2n-1)
// joined by a perfect matching between corresponding vertices, i.e. a
// prism graph over an n-gon. Requires n >= 3.
func DoubleNGon(n int) (*core.Multigraph, error) {
	if n < 3 {
		return nil, fmt.Errorf("DoubleNGon: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 3*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, core.EdgeRecord{U: i, V: j})
		edges = append(edges, core.EdgeRecord{U: n + i, V: n + j})
	}
	for i := 0; i < n; i++ {
		edges = append(edges, core.EdgeRecord{U: i, V: n + i})
	}

	return core.NewMultigraph(edges...), nil
}
