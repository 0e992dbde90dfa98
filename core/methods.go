// File: methods.go
// Role: Construction, accessors, and cloning for Multigraph.
// Determinism:
//   - Edges() returns edge-records in construction order (stable across copies).
//   - Vertices() returns ids sorted ascending.
// AI-HINT (file):
//   - Multigraph never mutates in place; RemoveEdge and Clone both return
//     fresh values so a parent frame's copy survives child recursion.

package core

import "sort"

// NewMultigraph constructs a Multigraph from a sequence of unordered edge
// pairs, preserving their given order for deterministic iteration.
//
// Complexity: O(E) to build the incidence index.
func NewMultigraph(edges ...EdgeRecord) *Multigraph {
	g := &Multigraph{
		edges:     append([]EdgeRecord(nil), edges...),
		incidence: make(map[int]int, len(edges)*2),
	}
	g.reindex()

	return g
}

// reindex rebuilds the incidence map from g.edges. A self-loop contributes
// once per edge-record (see doc.go for the degree convention).
func (g *Multigraph) reindex() {
	g.incidence = make(map[int]int, len(g.edges)*2)
	for _, e := range g.edges {
		g.incidence[e.U]++
		if e.V != e.U {
			g.incidence[e.V]++
		}
	}
}

// Edges returns the edge-record multiset in construction order. The
// returned slice is a copy; callers may not mutate the receiver through it.
//
// Complexity: O(E).
func (g *Multigraph) Edges() []EdgeRecord {
	out := make([]EdgeRecord, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edge-records.
// Complexity: O(1).
func (g *Multigraph) EdgeCount() int {
	return len(g.edges)
}

// VertexCount returns the number of distinct vertices with at least one
// incident edge-record.
// Complexity: O(1).
func (g *Multigraph) VertexCount() int {
	return len(g.incidence)
}

// Vertices returns the sorted list of vertex ids with at least one
// incident edge-record.
// Complexity: O(V log V).
func (g *Multigraph) Vertices() []int {
	out := make([]int, 0, len(g.incidence))
	for v := range g.incidence {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of edge-records incident to v, counting a
// self-loop once. Returns 0 for a vertex not present in the multigraph.
// Complexity: O(1).
func (g *Multigraph) Degree(v int) int {
	return g.incidence[v]
}

// ContainsVertex reports whether v has at least one incident edge-record.
// Complexity: O(1).
func (g *Multigraph) ContainsVertex(v int) bool {
	return g.incidence[v] > 0
}

// LoopCount returns how many self-loop edge-records are incident to v.
// Complexity: O(E).
func (g *Multigraph) LoopCount(v int) int {
	n := 0
	for _, e := range g.edges {
		if e.IsLoop() && e.U == v {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g; the copy shares no backing storage with
// the receiver, so mutating-looking operations on either never interfere.
// Complexity: O(E).
func (g *Multigraph) Clone() *Multigraph {
	return NewMultigraph(g.edges...)
}

// RemoveEdge returns a new Multigraph with the edge-record at idx removed
// (one occurrence; parallel copies at other indices are untouched). Any
// vertex whose incidence drops to zero is simply absent from the result's
// vertex set, since V(G) is always derived from the edge list.
//
// Complexity: O(E).
func (g *Multigraph) RemoveEdge(idx int) (*Multigraph, error) {
	if idx < 0 || idx >= len(g.edges) {
		return nil, wrapf("RemoveEdge", ErrEdgeIndexOutOfRange)
	}

	out := make([]EdgeRecord, 0, len(g.edges)-1)
	out = append(out, g.edges[:idx]...)
	out = append(out, g.edges[idx+1:]...)

	return NewMultigraph(out...), nil
}
