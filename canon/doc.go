// Package canon computes an isomorphism-invariant canonical labeling and
// fingerprint for a core.Multigraph.
//
// Algorithm (color refinement + deterministic tie-break):
//
//  1. Initialization — each vertex's initial category key is
//     (numNeighborOccurrences, -numSelfLoops). Categories are the ranks of
//     the sorted distinct keys.
//  2. Refinement round — each vertex's new key is
//     (currentCategory, n_0, n_1, ..., n_{k-1}) where n_i counts
//     neighbor-occurrences currently in category i, emitted in *reverse*
//     category order (a fixed, arbitrary-but-consistent tie-break).
//     Categories are reassigned from the new keys.
//  3. Termination — when every vertex is a singleton, all vertices share one
//     category, the assignment is unchanged from the previous round, or the
//     round count reaches |V| (safety cap).
//  4. Canonical id assignment — singleton categories assign ids by rank
//     directly; otherwise, within each category in ascending rank, repeatedly
//     pick the next vertex to label, preferring one already adjacent to a
//     labeled vertex (tie-broken by the minimum canonical id among labeled
//     neighbors, then raw id), falling back to smallest raw id.
//
// The canonical fingerprint is the sorted list of
// (min(c(u),c(v)), max(c(u),c(v))) pairs over every edge-record (including
// self-loops), serialized to a stable delimited string — the transposition
// table key used by the solve package.
//
// Complexity: O((V+E)·V) worst case.
package canon
