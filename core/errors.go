package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core package. Callers branch on these with
// errors.Is; messages are never matched as strings.
var (
	// ErrEdgeIndexOutOfRange indicates RemoveEdge or Cut was given an index
	// outside [0, EdgeCount()).
	ErrEdgeIndexOutOfRange = errors.New("core: edge index out of range")
)

// wrapf prefixes err with the method name, preserving it for errors.Is via %w.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
