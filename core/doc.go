// Package core provides the Multigraph data model for the edge-cutting
// game: a finite undirected multiset of edges over an integer vertex set,
// admitting self-loops and parallel edges.
//
// A Multigraph is immutable at the interface level: RemoveEdge never
// mutates the receiver, it returns a distinct value. Edge order is
// preserved across copies so move generation stays reproducible.
//
// Degree convention: Degree counts a self-loop once per edge-record, same
// as any other incident edge-record. The forest package does not rely on
// doubled loop-degree; it instead treats the presence of any self-loop as
// an immediate disqualification from being a forest, since a loop is a
// cycle on its own vertex regardless of how its degree is counted.
//
// Vertices with zero incident edge-records are not members of the
// multigraph; V(G) is always derived from the edge list, never stored
// separately.
package core
