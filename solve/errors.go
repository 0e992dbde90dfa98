package solve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the solve package.
var (
	// ErrMalformedMemoLine indicates a persisted memo file line did not
	// parse as "fingerprint,net_score".
	ErrMalformedMemoLine = errors.New("solve: malformed memo line")

	// errUnsupportedMemoType indicates SaveMemo was given a Memo
	// implementation it does not know how to enumerate.
	errUnsupportedMemoType = errors.New("solve: memo type does not support enumeration")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
