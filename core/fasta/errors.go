package fasta

import "fmt"

// MalformedInputError reports input that never declared a record header.
type MalformedInputError struct {
	Lines int // lines consumed before giving up
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed FASTA: no '>' header found in %d line(s)", e.Lines)
}
