package feature

import "fmt"

// OutOfRangeFeatureError reports a located feature that falls outside its record.
type OutOfRangeFeatureError struct {
	Record  string
	Feature string // "exon" or the motif label
	Start   int
	Length  int
	SeqLen  int
}

func (e *OutOfRangeFeatureError) Error() string {
	return fmt.Sprintf("record %q: %s at [%d,%d) outside sequence of length %d",
		e.Record, e.Feature, e.Start, e.Start+e.Length, e.SeqLen)
}
