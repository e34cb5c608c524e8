// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"motifmark-core/layout"
)

// WriteText prints one TSV line per exon and per motif occurrence.
// Records without uppercase bases print no exon line.
func WriteText(w io.Writer, rows []layout.Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := writeRowTSV(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRowTSV(w io.Writer, r layout.Row) error {
	f := r.Features
	id := f.Record.ID()
	if f.Exon.Length > 0 {
		if _, err := fmt.Fprintf(w, "%s\texon\t-\t-\t%d\t%d\t%d\n",
			id, f.Exon.Start, f.Exon.End(), f.Exon.Length,
		); err != nil {
			return err
		}
	}
	for _, o := range f.Motifs {
		if _, err := fmt.Fprintf(w, "%s\tmotif\t%s\t%s\t%d\t%d\t%d\n",
			id, o.Label, o.Pattern, o.Start, o.End(), o.Length,
		); err != nil {
			return err
		}
	}
	return nil
}
