// core/feature/locate.go
package feature

import (
	"motifmark-core/fasta"
	"motifmark-core/motif"
)

/* ----------------------- types --------------------- */

// Exon is the uppercase run of a record, relative to the record start.
// A record without uppercase bases reports Exon{Start: 0, Length: 0}.
type Exon struct {
	Start  int
	Length int
}

// End is the exclusive end offset.
func (e Exon) End() int { return e.Start + e.Length }

// Occurrence is one match of one compiled pattern.
type Occurrence struct {
	Start   int
	Length  int
	Label   string // motif the pattern was expanded from
	Pattern string
}

// End is the exclusive end offset.
func (o Occurrence) End() int { return o.Start + o.Length }

// Features holds everything located on one record.
type Features struct {
	Record fasta.Record
	Exon   Exon
	Motifs []Occurrence
}

/* ---------------------- search -------------------- */

func isExonBase(c byte) bool {
	return c == 'A' || c == 'C' || c == 'G' || c == 'T'
}

// LocateExon returns the first uppercase A/C/G/T offset and the number of
// such bases in seq. Length is a count, not last-first+1: lowercase bases
// inside the run shorten it.
func LocateExon(seq string) Exon {
	ex := Exon{}
	found := false
	for i := 0; i < len(seq); i++ {
		if !isExonBase(seq[i]) {
			continue
		}
		if !found {
			ex.Start = i
			found = true
		}
		ex.Length++
	}
	return ex
}

// LocateMotifs returns every match of every pattern in t. Results follow the
// table's pattern order, then left-to-right within a pattern; they are not
// sorted by position. Matches of one pattern never overlap each other.
func LocateMotifs(seq string, t *motif.Table) []Occurrence {
	var out []Occurrence
	for _, m := range t.Motifs() {
		for _, span := range m.FindAll(seq) {
			n := span[1] - span[0]
			if n == 0 {
				continue
			}
			out = append(out, Occurrence{Start: span[0], Length: n, Label: m.Label, Pattern: m.Pattern})
		}
	}
	return out
}

// Locate finds the exon and motif occurrences of rec and checks that each
// lies inside the sequence.
func Locate(rec fasta.Record, t *motif.Table) (Features, error) {
	f := Features{
		Record: rec,
		Exon:   LocateExon(rec.Seq),
		Motifs: LocateMotifs(rec.Seq, t),
	}
	n := len(rec.Seq)
	if f.Exon.Length > 0 && !inBounds(f.Exon.Start, f.Exon.Length, n) {
		return f, &OutOfRangeFeatureError{Record: rec.Header, Feature: "exon", Start: f.Exon.Start, Length: f.Exon.Length, SeqLen: n}
	}
	for _, o := range f.Motifs {
		if !inBounds(o.Start, o.Length, n) {
			return f, &OutOfRangeFeatureError{Record: rec.Header, Feature: o.Label, Start: o.Start, Length: o.Length, SeqLen: n}
		}
	}
	return f, nil
}

func inBounds(start, length, n int) bool {
	return start >= 0 && length >= 0 && start < n && start+length <= n
}
