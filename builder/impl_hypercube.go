package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Hypercube returns the dimension-d hypercube graph Q(d): 2^d vertices,
// labeled by their binary representation, with an edge between any two
// vertices whose labels differ in exactly one bit. Requires dimension >= 1.
func Hypercube(dimension int) (*core.Multigraph, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("Hypercube: %w", ErrTooFewVertices)
	}
	if dimension > 20 {
		return nil, fmt.Errorf("Hypercube: %w", ErrInvalidParameter)
	}

	n := 1 << dimension
	edges := make([]core.EdgeRecord, 0, dimension*n/2)
	for v := 0; v < n; v++ {
		for bit := 0; bit < dimension; bit++ {
			u := v ^ (1 << bit)
			if u > v {
				edges = append(edges, core.EdgeRecord{U: v, V: u})
			}
		}
	}

	return core.NewMultigraph(edges...), nil
}
