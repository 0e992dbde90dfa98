// File: recursion.go
// Role: NetScore — the negamax recursion with transposition table.
// AI-HINT (file):
//   - The memoized and returned Sequence is always the bare continuation
//     from the position being solved, never prefixed with a caller's move
//     history; NetScore's caller (always the top level, since Multigraph
//     carries no history of its own) gets back exactly that continuation.
//   - Stack depth equals the initial edge count; callers driving edge
//     counts past a few thousand should raise the goroutine stack limit or
//     convert this recursion to an explicit work stack.

package solve

import (
	"time"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/canon"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/forest"
)

// NetScore computes the net score (first-player points minus second-player
// points) of g under optimal play from both sides, plus a representative
// winning move sequence.
//
// Complexity: bounded by the number of distinct reachable canonical
// positions; memoization collapses isomorphic subgames to one entry.
func (s *Solver) NetScore(g *core.Multigraph) (Result, error) {
	start := time.Now()
	s.progressDepthTop = g.EdgeCount()
	s.progressCount = 0
	s.progressStart = start

	score, seq, err := s.netScore(g, 0)
	if err != nil {
		return Result{}, err
	}

	total := g.VertexCount()
	first := (total + score) / 2
	second := (total - score) / 2

	return Result{
		NetScore:    score,
		FirstScore:  first,
		SecondScore: second,
		Sequence:    seq,
	}, nil
}

// netScore is the memoized recursive core. It returns the net score from
// this position and the bare sequence of moves that realizes it, running
// from this position until the first forest position; the side to move
// there takes every remaining vertex, so no further moves are listed.
func (s *Solver) netScore(g *core.Multigraph, depth int) (int, []core.EdgeRecord, error) {
	key := canon.Fingerprint(g)
	if e, ok := s.memo.Get(key); ok {
		return e.Score, e.Sequence, nil
	}

	if forest.IsForest(g) {
		score := g.VertexCount()
		s.memo.Set(key, Entry{Score: score, Sequence: nil})

		return score, nil, nil
	}

	vertexCount := g.VertexCount()
	best := -vertexCount
	var bestSeq []core.EdgeRecord

	tried := make(map[core.EdgeRecord]bool)
	edges := g.Edges()
	for idx, e := range edges {
		norm := e.Normalized()
		if tried[norm] {
			continue
		}
		tried[norm] = true

		next, points, err := core.Cut(g, idx)
		if err != nil {
			return 0, nil, err
		}

		mult := -1
		if points > 0 {
			mult = 1
		}

		childScore, childSeq, err := s.netScore(next, depth+1)
		if err != nil {
			return 0, nil, err
		}

		value := points + mult*childScore
		if value > best || bestSeq == nil {
			best = value
			bestSeq = append([]core.EdgeRecord{e}, childSeq...)
		}
		if best == vertexCount {
			break
		}
	}

	s.trackProgress(depth)
	s.memo.Set(key, Entry{Score: best, Sequence: bestSeq})

	return best, bestSeq, nil
}

// trackProgress invokes the registered ProgressFunc, if any, reporting how
// many nodes have completed at the shallowest depth touched so far.
func (s *Solver) trackProgress(depth int) {
	if s.progress == nil {
		return
	}
	if depth > s.progressDepthTop {
		return
	}
	if depth == s.progressDepthTop {
		s.progressCount++
	} else {
		s.progressDepthTop = depth
		s.progressCount = 1
	}
	s.progress(depth, s.progressCount, time.Since(s.progressStart))
}
