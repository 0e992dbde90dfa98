// File: finalize.go
// Role: finalizeCanonicalIDs — assigns the actual c(v) values once
// refinement has converged.

package canon

import "sort"

// finalizeCanonicalIDs assigns canonicalID to every vertex. If refinement
// produced a singleton category for every vertex, c(v) is simply its
// category rank. Otherwise, categories are processed in ascending rank and
// ties within a category are broken by the preference rule: prefer a vertex
// already adjacent to some already-labeled vertex, tie-broken by the
// minimum canonical id among its labeled neighbors, then by raw id; vertices
// with no labeled neighbor are ordered by raw id.
func finalizeCanonicalIDs(vertices map[int]*vertex) {
	numVertices := len(vertices)

	numCategories := 0
	for _, v := range vertices {
		if v.category+1 > numCategories {
			numCategories = v.category + 1
		}
	}

	if numCategories == numVertices {
		for _, v := range vertices {
			v.canonicalID = v.category
		}
		return
	}

	buckets := make([][]*vertex, numCategories)
	for _, v := range vertices {
		buckets[v.category] = append(buckets[v.category], v)
	}

	nextID := 0
	for _, bucket := range buckets {
		assignTies(vertices, bucket, &nextID)
	}
}

// assignTies repeatedly picks the next vertex to label from bucket until
// it is empty, mutating *nextID and each chosen vertex's canonicalID.
func assignTies(vertices map[int]*vertex, bucket []*vertex, nextID *int) {
	remaining := append([]*vertex(nil), bucket...)

	for len(remaining) > 0 {
		var chosen *vertex
		if len(remaining) == 1 {
			chosen = remaining[0]
		} else {
			connected, unconnected := splitByConnection(vertices, remaining)
			if len(connected) > 0 {
				sort.Slice(connected, func(i, j int) bool {
					mi := minLabeledNeighbor(vertices, connected[i])
					mj := minLabeledNeighbor(vertices, connected[j])
					if mi != mj {
						return mi < mj
					}
					return connected[i].rawID < connected[j].rawID
				})
				chosen = connected[0]
			} else {
				sort.Slice(unconnected, func(i, j int) bool {
					return unconnected[i].rawID < unconnected[j].rawID
				})
				chosen = unconnected[0]
			}
		}

		chosen.canonicalID = *nextID
		*nextID++

		filtered := remaining[:0]
		for _, v := range remaining {
			if v != chosen {
				filtered = append(filtered, v)
			}
		}
		remaining = filtered
	}
}

// splitByConnection partitions candidates into those with at least one
// neighbor that already has a canonical id, and those with none.
func splitByConnection(vertices map[int]*vertex, candidates []*vertex) (connected, unconnected []*vertex) {
	for _, v := range candidates {
		labeled := false
		for _, n := range v.neighbors {
			if vertices[n].canonicalID != -1 {
				labeled = true
				break
			}
		}
		if labeled {
			connected = append(connected, v)
		} else {
			unconnected = append(unconnected, v)
		}
	}

	return connected, unconnected
}

// minLabeledNeighbor returns the smallest canonical id among v's already
// labeled neighbors (v is guaranteed to have at least one by caller).
func minLabeledNeighbor(vertices map[int]*vertex, v *vertex) int {
	min := -1
	for _, n := range v.neighbors {
		id := vertices[n].canonicalID
		if id == -1 {
			continue
		}
		if min == -1 || id < min {
			min = id
		}
	}

	return min
}
