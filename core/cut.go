// File: cut.go
// Role: Move Generator / Edge Cutter — produces the successor Multigraph
// and the immediate point award for cutting one edge-record.
// AI-HINT (file):
//   - points is computed from the *post-removal* incidence count, uniformly
//     for loop and non-loop edges; this is the resolved reading of the
//     source's pre/post-removal ambiguity (see repository DESIGN.md).

package core

// Cut removes the edge-record at idx from g and reports how many points the
// move is worth: the number of edge(idx)'s endpoints that have zero
// remaining incident edge-records afterward.
//
//   - Self-loop (U == V): points is 1 iff the loop was the vertex's sole
//     incidence, else 0.
//   - Non-loop: points is 0, 1, or 2 depending on how many endpoints became
//     isolated.
//
// Complexity: O(E).
func Cut(g *Multigraph, idx int) (next *Multigraph, points int, err error) {
	if idx < 0 || idx >= len(g.edges) {
		return nil, 0, wrapf("Cut", ErrEdgeIndexOutOfRange)
	}

	e := g.edges[idx]
	next, err = g.RemoveEdge(idx)
	if err != nil {
		return nil, 0, err
	}

	if !next.ContainsVertex(e.U) {
		points++
	}
	if e.V != e.U && !next.ContainsVertex(e.V) {
		points++
	}

	return next, points, nil
}
