// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Marker starts every header line.
const Marker = '>'

// Record is one normalized FASTA entry. Header is the header line without
// the marker; Seq is every sequence line of the entry joined with no separator.
type Record struct {
	Header string
	Seq    string
}

// ID returns the first whitespace-delimited token of the header.
func (r Record) ID() string {
	return string(parseHeaderID([]byte(r.Header)))
}

// Stats describes one Normalize pass.
type Stats struct {
	Records   int
	Discarded int // non-blank sequence lines seen before the first header
}

// NormalizeCtx scans wrapped FASTA from r and calls emit once per record.
// The first header flushes nothing; every later header flushes the record
// before it, and EOF flushes the last one. Blank lines are skipped.
//
// Input without any header yields *MalformedInputError.
func NormalizeCtx(ctx context.Context, r io.Reader, emit func(Record) error) (Stats, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		st     Stats
		header string
		inRec  bool
		lines  int
		seq    = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		st.Records++
		return emit(Record{Header: header, Seq: string(seq)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		lines++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == Marker {
			if err := flush(); err != nil {
				return st, err
			}
			seq = seq[:0]
			header = string(bytes.TrimSpace(line[1:]))
			inRec = true
			continue
		}
		if !inRec {
			st.Discarded++
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("fasta scan: %w", err)
	}
	if !inRec {
		return st, &MalformedInputError{Lines: lines}
	}
	if err := flush(); err != nil {
		return st, err
	}
	return st, nil
}

// Normalize rewrites wrapped FASTA from r as the canonical two-line form
// (">header\nsequence\n" per record) on w. Stats.Records is the record count.
func Normalize(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	bw := bufio.NewWriter(w)
	st, err := NormalizeCtx(ctx, r, func(rec Record) error {
		_, err := fmt.Fprintf(bw, "%c%s\n%s\n", Marker, rec.Header, rec.Seq)
		return err
	})
	if err != nil {
		return st, err
	}
	return st, bw.Flush()
}

func parseHeaderID(hdr []byte) []byte {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i]
	}
	return hdr
}
