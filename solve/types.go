package solve

import (
	"time"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// Entry is one transposition-table record: the net score for a canonical
// position, plus the bare subgame move sequence that realizes it (never
// prefixed with any caller's move history — see doc.go).
type Entry struct {
	Score    int
	Sequence []core.EdgeRecord
}

// Memo is the transposition-table contract the Solver consumes. The default
// implementation (NewMemo) is a bare map; SyncMemo additionally guards
// concurrent access for callers who opt into WithConcurrentMemo.
type Memo interface {
	Get(key string) (Entry, bool)
	Set(key string, e Entry)
	Len() int
}

// mapMemo is the default, single-goroutine Memo implementation.
type mapMemo map[string]Entry

// NewMemo returns an empty, non-concurrency-safe Memo.
func NewMemo() Memo {
	return make(mapMemo)
}

func (m mapMemo) Get(key string) (Entry, bool) {
	e, ok := m[key]
	return e, ok
}

func (m mapMemo) Set(key string, e Entry) {
	m[key] = e
}

func (m mapMemo) Len() int {
	return len(m)
}

// Result is the Solver's public answer for one initial Multigraph.
type Result struct {
	NetScore    int
	FirstScore  int
	SecondScore int
	Sequence    []core.EdgeRecord
}

// ProgressFunc is invoked by the Solver as it completes subtrees. depth is
// the recursion depth just completed; count is how many positions at that
// depth have completed consecutively; elapsed is time since the NetScore
// call began.
type ProgressFunc func(depth, count int, elapsed time.Duration)
