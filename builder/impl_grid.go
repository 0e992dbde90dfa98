package builder

import (
	"fmt"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Grid returns an rows-by-cols grid of vertices, indexed row-major as
// i*cols+j, joined by horizontal and vertical edges to their neighbors.
// Each boundary vertex additionally carries one self-loop for every
// missing neighbor beyond the edge of the board (two at a corner of a grid
// with at least two rows and columns). Requires rows >= 1
// and cols >= 1.
//
func Grid(rows, cols int) (*core.Multigraph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %w", ErrTooFewVertices)
	}

	edges := make([]core.EdgeRecord, 0, rows*cols*3)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := i*cols + j
			if i == 0 {
				edges = append(edges, core.EdgeRecord{U: v, V: v})
			}
			if i == rows-1 {
				edges = append(edges, core.EdgeRecord{U: v, V: v})
			} else {
				edges = append(edges, core.EdgeRecord{U: v, V: v + cols})
			}
			if j == 0 {
				edges = append(edges, core.EdgeRecord{U: v, V: v})
			}
			if j == cols-1 {
				edges = append(edges, core.EdgeRecord{U: v, V: v})
			} else {
				edges = append(edges, core.EdgeRecord{U: v, V: v + 1})
			}
		}
	}

	return core.NewMultigraph(edges...), nil
}
