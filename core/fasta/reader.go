// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Reader pulls records from canonical two-line FASTA as written by Normalize.
// To iterate again, build a new Reader over the same bytes.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader wraps canonical input.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return &Reader{sc: sc}
}

// Read returns the next record, or io.EOF once the input is exhausted.
func (r *Reader) Read() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, fmt.Errorf("fasta read: %w", err)
		}
		return Record{}, io.EOF
	}
	r.line++
	head := bytes.TrimSpace(r.sc.Bytes())
	if len(head) == 0 {
		return Record{}, io.EOF
	}
	if head[0] != Marker {
		return Record{}, fmt.Errorf("fasta read: line %d: expected header, got %q", r.line, head)
	}
	rec := Record{Header: string(bytes.TrimSpace(head[1:]))}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, fmt.Errorf("fasta read: %w", err)
		}
		return rec, nil
	}
	r.line++
	rec.Seq = string(bytes.TrimSpace(r.sc.Bytes()))
	return rec, nil
}

// ReadAll normalizes r and collects every record.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	_, err := NormalizeCtx(ctx, r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
