// File: label.go
// Role: Label — the refinement-based canonical labeling algorithm.
// AI-HINT (file):
//   - Category keys are compared as tuples: []int slices compared
//     element-wise, which is valid here because every categoryKey at a
//     given round has the same length across all vertices.

package canon

import (
	"sort"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Label computes a canonical id c(v) for every vertex of g, returning the
// mapping from raw vertex id to canonical id (a permutation of
// 0..VertexCount()-1).
//
// Complexity: O((V+E)·V) worst case (V refinement rounds, each O(V+E)).
func Label(g *core.Multigraph) map[int]int {
	vertices := buildVertices(g)
	if len(vertices) == 0 {
		return map[int]int{}
	}

	categorize(vertices)
	finalizeCanonicalIDs(vertices)

	out := make(map[int]int, len(vertices))
	for id, v := range vertices {
		out[id] = v.canonicalID
	}

	return out
}

// buildVertices constructs the per-vertex working records from g's edge
// list. A self-loop contributes the vertex's own id once to its own
// neighbor multiset.
func buildVertices(g *core.Multigraph) map[int]*vertex {
	vertices := make(map[int]*vertex)
	ensure := func(id int) *vertex {
		v, ok := vertices[id]
		if !ok {
			v = &vertex{rawID: id, canonicalID: -1, category: -1, priorCategory: -1}
			vertices[id] = v
		}
		return v
	}

	for _, e := range g.Edges() {
		u := ensure(e.U)
		u.neighbors = append(u.neighbors, e.V)
		if e.V != e.U {
			v := ensure(e.V)
			v.neighbors = append(v.neighbors, e.U)
		}
	}

	for _, v := range vertices {
		for _, n := range v.neighbors {
			if n == v.rawID {
				v.numLoops++
			}
		}
	}

	return vertices
}

// categorize runs iterated color refinement until termination.
func categorize(vertices map[int]*vertex) {
	numVertices := len(vertices)

	for _, v := range vertices {
		v.categoryKey = []int{v.numNeighbors(), -v.numLoops}
	}
	numCategories := updateCategoriesFromKeys(vertices)
	iterations := 1

	for !refinementDone(vertices, numCategories, numVertices, iterations) {
		for _, v := range vertices {
			v.priorCategory = v.category
			key := make([]int, 1, 1+numCategories)
			key[0] = v.category

			counts := make([]int, numCategories)
			for _, n := range v.neighbors {
				counts[vertices[n].category]++
			}
			// Emit neighbor-category counts in reverse category order; a
			// fixed, arbitrary-but-consistent tie-break.
			for i := numCategories - 1; i >= 0; i-- {
				key = append(key, counts[i])
			}
			v.categoryKey = key
		}
		numCategories = updateCategoriesFromKeys(vertices)
		iterations++
	}
}

// refinementDone applies the four termination tests: all-singleton, all-one-
// category, round cap reached, or no category changed since the last round.
func refinementDone(vertices map[int]*vertex, numCategories, numVertices, iterations int) bool {
	if numCategories == 1 || numCategories == numVertices || iterations >= numVertices {
		return true
	}
	for _, v := range vertices {
		if v.category != v.priorCategory {
			return false
		}
	}

	return true
}

// updateCategoriesFromKeys assigns each vertex's category to the rank of
// its categoryKey among the sorted distinct keys, returning the number of
// distinct categories.
func updateCategoriesFromKeys(vertices map[int]*vertex) int {
	keySet := make(map[string][]int)
	var keys [][]int
	for _, v := range vertices {
		k := keyString(v.categoryKey)
		if _, ok := keySet[k]; !ok {
			keySet[k] = v.categoryKey
			keys = append(keys, v.categoryKey)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return lessIntSlice(keys[i], keys[j]) })

	rank := make(map[string]int, len(keys))
	for i, k := range keys {
		rank[keyString(k)] = i
	}
	for _, v := range vertices {
		v.category = rank[keyString(v.categoryKey)]
	}

	return len(keys)
}

func keyString(key []int) string {
	b := make([]byte, 0, len(key)*4)
	for i, k := range key {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, k)
	}

	return string(b)
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	start := len(b)
	if v == 0 {
		return append(b, '0')
	}
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}
