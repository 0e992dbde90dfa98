package builder

import "github.com/0xCUB3/Modified-Dots-and-Boxes/core"

// Petersen returns the Petersen graph: a fixed 10-vertex, 15-edge,
// 3-regular graph, the outer 5-cycle 0-1-2-3-4 joined by spokes to the
// inner 5-vertex pentagram 5-7-9-6-8.
func Petersen() (*core.Multigraph, error) {
	edges := []core.EdgeRecord{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0},
		{U: 5, V: 7}, {U: 7, V: 9}, {U: 9, V: 6}, {U: 6, V: 8}, {U: 8, V: 5},
		{U: 0, V: 5}, {U: 1, V: 6}, {U: 2, V: 7}, {U: 3, V: 8}, {U: 4, V: 9},
	}

	return core.NewMultigraph(edges...), nil
}
