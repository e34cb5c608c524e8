// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"motifmark-core/fasta"
	"motifmark-core/feature"
	"motifmark-core/layout"
	"motifmark-core/motif"
)

// Stats summarizes one run.
type Stats struct {
	Records     int
	Discarded   int // sequence lines before the first header
	Occurrences int
}

// Run lays out every record read from in. The input is first normalized in
// memory to learn the record count, then pulled back one record at a time:
// locate, place, visit. The first error aborts the run and no drawing is
// returned, so a failed record never yields a partial image.
func Run(
	ctx context.Context,
	cfg layout.Config,
	in io.Reader,
	t *motif.Table,
	visit func(layout.Row) error,
) (layout.Drawing, Stats, error) {
	var (
		st    Stats
		canon bytes.Buffer
	)
	ns, err := fasta.Normalize(ctx, in, &canon)
	st.Records, st.Discarded = ns.Records, ns.Discarded
	if err != nil {
		return layout.Drawing{}, st, err
	}

	eng, err := layout.New(cfg, t, ns.Records)
	if err != nil {
		return layout.Drawing{}, st, err
	}

	rd := fasta.NewReader(&canon)
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return layout.Drawing{}, st, ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return layout.Drawing{}, st, err
		}
		f, err := feature.Locate(rec, t)
		if err != nil {
			return layout.Drawing{}, st, fmt.Errorf("record %d: %w", i+1, err)
		}
		row, err := eng.Add(f)
		if err != nil {
			return layout.Drawing{}, st, fmt.Errorf("record %d: %w", i+1, err)
		}
		st.Occurrences += len(f.Motifs)
		if visit != nil {
			if err := visit(row); err != nil {
				return layout.Drawing{}, st, err
			}
		}
	}
	if eng.Rows() != ns.Records {
		return layout.Drawing{}, st, fmt.Errorf("pipeline: laid out %d of %d records", eng.Rows(), ns.Records)
	}
	return eng.Finish(), st, nil
}
