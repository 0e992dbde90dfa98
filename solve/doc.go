// Package solve implements the negamax-style game solver: memoized search
// over reachable Multigraph positions, keyed by canon.Fingerprint, that
// computes the net score (first-player points minus second-player points)
// under optimal play, plus an optional principal variation of moves.
//
// Two design choices are documented in the repository DESIGN.md:
//
//   - points is computed from post-removal incidence, uniformly (core.Cut
//     already does this).
//   - the memoized score is reusable across any call context (it is a pure
//     function of the canonical fingerprint), but the memoized sequence is
//     the bare subgame continuation — callers concatenate their own move
//     prefix rather than trusting a stored, context-dependent prefix.
//
// Solver is built with functional options (NewSolver(opts...)). It owns
// its transposition table for its own lifetime, so repeated NetScore calls
// on one Solver share memoized positions; there is no global mutable state.
package solve
