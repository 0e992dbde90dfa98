// File: forest.go
// Role: IsForest — the Tree Detector: a multigraph is a forest iff it has
// no self-loops and no cycles among its non-loop edges.
// AI-HINT (file):
//   - Any self-loop makes the graph not-a-forest immediately; this is
//     checked before the edge-count and leaf-pruning fast paths.

package forest

import "github.com/0xCUB3/Modified-Dots-and-Boxes/core"

// IsForest reports whether g is acyclic and loop-free.
//
// Fast paths, in order:
//  1. Any self-loop => not a forest.
//  2. edge_count > vertex_count => not a forest (too many edges to be acyclic).
//  3. edge_count == 1 (and not a loop, excluded by (1)) => a forest.
//
// Otherwise the detector iteratively removes leaves (vertices with exactly
// one incident edge-record) until none remain; g is a forest iff no edges
// survive the pruning.
//
// Complexity: O(V+E) per pruning round; each round that continues removes
// at least one edge, so the worst case is O(E·(V+E)).
func IsForest(g *core.Multigraph) bool {
	edges := g.Edges()
	for _, e := range edges {
		if e.IsLoop() {
			return false
		}
	}

	if len(edges) == 0 {
		return true
	}
	if len(edges) > g.VertexCount() {
		return false
	}
	if len(edges) == 1 {
		return true
	}

	return len(pareLeaves(edges)) == 0
}

// pareLeaves repeatedly removes edges incident to a degree-1 vertex until no
// such vertex remains, returning whatever edges survive. Non-loop edges
// only, by caller contract.
func pareLeaves(edges []core.EdgeRecord) []core.EdgeRecord {
	degree := make(map[int]int, len(edges)*2)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}

	remaining := append([]core.EdgeRecord(nil), edges...)
	for {
		leaves := make(map[int]bool)
		for v, d := range degree {
			if d == 1 {
				leaves[v] = true
			}
		}
		if len(leaves) == 0 {
			break
		}

		kept := remaining[:0]
		changed := false
		for _, e := range remaining {
			if leaves[e.U] || leaves[e.V] {
				degree[e.U]--
				degree[e.V]--
				changed = true
				continue
			}
			kept = append(kept, e)
		}
		remaining = kept
		if !changed {
			break
		}
	}

	return remaining
}
