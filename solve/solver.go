// File: solver.go
// Role: Solver construction and its functional-option surface.

package solve

import "time"

// Solver owns one transposition table (and, optionally, a progress
// callback) for the lifetime of its NetScore calls. It holds no global
// mutable state; create a fresh Solver per independent search, or reuse one
// across calls to share memoized positions.
type Solver struct {
	memo     Memo
	progress ProgressFunc

	// Per-call progress bookkeeping, reset at the start of each NetScore
	// invocation.
	progressDepthTop int
	progressCount    int
	progressStart    time.Time
}

// SolverOption configures a Solver before use.
type SolverOption func(*Solver)

// WithMemo injects a pre-populated or externally persisted Memo, enabling
// an optional persisted-cache workflow across process restarts.
func WithMemo(m Memo) SolverOption {
	return func(s *Solver) {
		if m != nil {
			s.memo = m
		}
	}
}

// WithConcurrentMemo swaps in a SyncMemo, for callers who plan to share one
// Solver's transposition table across goroutines.
func WithConcurrentMemo() SolverOption {
	return func(s *Solver) {
		s.memo = NewSyncMemo()
	}
}

// WithProgress registers a callback invoked as the search completes
// subtrees; see ProgressFunc. Progress reporting is optional and belongs to
// the driver, not the core solver.
func WithProgress(fn ProgressFunc) SolverOption {
	return func(s *Solver) {
		s.progress = fn
	}
}

// NewSolver constructs a Solver with a fresh in-memory Memo, then applies
// opts in order.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{memo: NewMemo()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Memo exposes the Solver's transposition table, primarily so a driver can
// persist it after a NetScore call (see SaveMemo).
func (s *Solver) Memo() Memo {
	return s.memo
}
