// File: fingerprint.go
// Role: Fingerprint — serializes a Multigraph's canonical edge list to a
// stable string, the solve package's transposition-table key.

package canon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Fingerprint computes the canonical labeling of g and returns its
// isomorphism-invariant fingerprint: the sorted list of
// (min(c(u),c(v)), max(c(u),c(v))) pairs for every edge-record (including
// self-loops and parallel copies), serialized as "lo-hi" pairs joined by
// "|". Two multigraphs are isomorphic iff their fingerprints are equal.
//
// Complexity: O((V+E)·V) for labeling, plus O(E log E) to sort the pairs.
func Fingerprint(g *core.Multigraph) string {
	labels := Label(g)

	edges := g.Edges()
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		lo, hi := labels[e.U], labels[e.V]
		if lo > hi {
			lo, hi = hi, lo
		}
		pairs[i] = [2]int{lo, hi}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = strconv.Itoa(p[0]) + "-" + strconv.Itoa(p[1])
	}

	return strings.Join(parts, "|")
}
