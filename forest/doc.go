// Package forest decides whether a core.Multigraph is a forest: acyclic and
// loop-free. A multigraph with any self-loop is never a forest.
//
// The detector repeatedly strips leaves (vertices with exactly one
// incident edge-record) until none remain, then checks whether any edges
// survived. IsForest never mutates its input: it works over a local
// incidence-count map.
package forest
