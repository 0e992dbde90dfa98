package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// LoopyStar returns a hub vertex 0 joined to nSpokes rim vertices, each rim
// vertex additionally carrying nLoops self-loop edges. Requires nSpokes >=
// 1 and nLoops >= 1.
func LoopyStar(nSpokes, nLoops int) (*core.Multigraph, error) {
	if nSpokes < 1 {
		return nil, fmt.Errorf("LoopyStar: %w", ErrTooFewVertices)
	}
	if nLoops < 1 {
		return nil, fmt.Errorf("LoopyStar: %w", ErrInvalidParameter)
	}

	edges := make([]core.EdgeRecord, 0, nSpokes*(1+nLoops))
	for i := 1; i <= nSpokes; i++ {
		edges = append(edges, core.EdgeRecord{U: 0, V: i})
		for l := 0; l < nLoops; l++ {
			edges = append(edges, core.EdgeRecord{U: i, V: i})
		}
	}

	return core.NewMultigraph(edges...), nil
}
