package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Friendship returns nCycles petals of length cycleLen, all sharing a
// single center vertex 0 (the classic friendship graph F_n is the special
// case cycleLen == 3). Requires nCycles >= 1 and cycleLen >= 3.
//
// Each petal contributes cycleLen-1 fresh vertices and cycleLen edges: a
// path of cycleLen-1 new vertices closed into a cycle through the shared
// center.
func Friendship(nCycles, cycleLen int) (*core.Multigraph, error) {
	if nCycles < 1 {
		return nil, fmt.Errorf("Friendship: %w", ErrTooFewVertices)
	}
	if cycleLen < 3 {
		return nil, fmt.Errorf("Friendship: %w", ErrInvalidParameter)
	}

	edges := make([]core.EdgeRecord, 0, nCycles*cycleLen)
	next := 1
	for p := 0; p < nCycles; p++ {
		prev := 0
		for i := 0; i < cycleLen-1; i++ {
			v := next
			next++
			edges = append(edges, core.EdgeRecord{U: prev, V: v})
			prev = v
		}
		edges = append(edges, core.EdgeRecord{U: prev, V: 0})
	}

	return core.NewMultigraph(edges...), nil
}
