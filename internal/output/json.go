// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"

	"motifmark-core/layout"
	"motifmark-core/motif"
	"motifmark/pkg/api"
)

// ToAPIRecord converts a placed row to the stable wire schema (v1).
func ToAPIRecord(r layout.Row) api.RecordV1 {
	f := r.Features
	v := api.RecordV1{
		Header: f.Record.Header,
		ID:     f.Record.ID(),
		Length: len(f.Record.Seq),
		Row:    r.Index,
		Y:      r.Y,
		Exon: api.ExonV1{
			Start:  f.Exon.Start,
			End:    f.Exon.End(),
			Length: f.Exon.Length,
		},
		Motifs: make([]api.OccurrenceV1, 0, len(f.Motifs)),
	}
	for _, o := range f.Motifs {
		v.Motifs = append(v.Motifs, api.OccurrenceV1{
			Label: o.Label, Pattern: o.Pattern,
			Start: o.Start, End: o.End(), Length: o.Length,
		})
	}
	return v
}

// ToAPILegend lists every motif with its hex color and patterns.
func ToAPILegend(t *motif.Table) []api.LegendEntryV1 {
	pats := map[string][]string{}
	for _, m := range t.Motifs() {
		pats[m.Label] = append(pats[m.Label], m.Pattern)
	}
	out := make([]api.LegendEntryV1, 0, len(pats))
	for _, l := range t.Labels() {
		c, _ := t.Color(l)
		out = append(out, api.LegendEntryV1{
			Label:    l,
			Color:    colorful.Color{R: c.R, G: c.G, B: c.B}.Hex(),
			Patterns: pats[l],
		})
	}
	return out
}

// WriteJSON writes the whole report as one indented JSON document.
func WriteJSON(w io.Writer, rows []layout.Row, t *motif.Table) error {
	doc := api.ReportV1{
		Records: make([]api.RecordV1, 0, len(rows)),
		Legend:  ToAPILegend(t),
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, ToAPIRecord(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
