// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"errors"
	"io"
)

var (
	// ErrInterrupt indicates that the user asked to abort the current read
	// (Ctrl+C, or cancellation of the caller's context).
	ErrInterrupt = errors.New("interrupted")
)

// IsSignal reports whether err is one of the two user signals that end an
// acquisition: end-of-input (io.EOF) or an interrupt. Any other error is an
// ordinary failure.
func IsSignal(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupt)
}
