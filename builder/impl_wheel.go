package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Wheel returns a hub vertex joined to nSpokes rim vertices, with the rim
// vertices themselves arranged in a cycle. Requires nSpokes >= 3 (below
// that there is no rim cycle to close).
//
// Vertex 0 is the hub; vertices 1..nSpokes are the rim, in cycle order.
//
// A spoke (0, i) joins the hub to every rim vertex, plus rim edges
// (i, i+1) closing at (nSpokes, 1).
func Wheel(nSpokes int) (*core.Multigraph, error) {
	if nSpokes < 3 {
		return nil, fmt.Errorf("Wheel: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, 2*nSpokes)
	for i := 1; i <= nSpokes; i++ {
		edges = append(edges, core.EdgeRecord{U: 0, V: i})
	}
	for i := 1; i < nSpokes; i++ {
		edges = append(edges, core.EdgeRecord{U: i, V: i + 1})
	}
	edges = append(edges, core.EdgeRecord{U: nSpokes, V: 1})

	return core.NewMultigraph(edges...), nil
}
