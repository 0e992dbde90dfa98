package builder

import "errors"

// Sentinel errors for the builder package. Each constructor validates its
// parameters up front and returns one of these rather than panicking or
// returning a malformed graph.
var (
	// ErrTooFewVertices indicates a requested topology needs more vertices
	// than the caller supplied (e.g. Complete(0) or Wheel with fewer than
	// 3 spokes).
	ErrTooFewVertices = errors.New("builder: too few vertices for requested topology")

	// ErrInvalidParameter indicates a parameter outside its documented
	// domain (negative loop counts, zero-length cycles, and similar).
	ErrInvalidParameter = errors.New("builder: invalid parameter")

	// ErrFileFormat indicates FromFile encountered a line that is not a
	// well-formed "u,v" integer pair.
	ErrFileFormat = errors.New("builder: malformed edge list file")
)
