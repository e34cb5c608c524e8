package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err comes from a reader closing stdout early
// (for example `motifmark ... --report text | head`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
