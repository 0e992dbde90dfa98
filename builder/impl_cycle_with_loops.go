package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// CycleWithLoops returns a simple n-cycle in which every vertex also
// carries its own self-loop. Requires n >= 3.
func CycleWithLoops(n int) (*core.Multigraph, error) {
	if n < 3 {
		return nil, fmt.Errorf("CycleWithLoops: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 2*n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.EdgeRecord{U: i, V: (i + 1) % n})
		edges = append(edges, core.EdgeRecord{U: i, V: i})
	}

	return core.NewMultigraph(edges...), nil
}
