package layout

import "fmt"

// UnknownMotifError reports an occurrence whose label has no color in the
// motif table. Compile assigns every label a color, so this means the
// occurrences and the table came from different compilations.
type UnknownMotifError struct {
	Record string
	Label  string
}

func (e *UnknownMotifError) Error() string {
	return fmt.Sprintf("record %q: motif %q has no registered color", e.Record, e.Label)
}
