// core/motif/compile.go
package motif

import (
	"errors"
	"fmt"
	"regexp"
)

// Compiled is one matchable pattern and the motif it belongs to.
type Compiled struct {
	Pattern string
	Label   string // the motif's original text
	Color   RGB
	re      *regexp.Regexp
}

// FindAll returns the [start, end) span of every non-overlapping match in seq,
// scanning left to right.
func (c Compiled) FindAll(seq string) [][]int {
	return c.re.FindAllStringIndex(seq, -1)
}

// Table is the compiled motif set. It is never modified after Compile.
type Table struct {
	motifs []Compiled
	labels []string
	colors map[string]RGB
}

// Compile expands every definition into its patterns (see Patterns), draws
// one color per definition from src, and compiles each pattern. A label
// repeated in defs is compiled once.
func Compile(defs []Definition, src Source) (*Table, error) {
	t := &Table{colors: make(map[string]RGB, len(defs))}
	owner := make(map[string]string)

	for _, d := range defs {
		if d.Label == "" {
			return nil, &PatternCompilationError{Label: d.Label, Err: errors.New("empty motif")}
		}
		if _, dup := t.colors[d.Label]; dup {
			continue
		}
		col := RandomRGB(src)
		t.labels = append(t.labels, d.Label)
		t.colors[d.Label] = col

		for _, pat := range Patterns(d.Label) {
			if prev, ok := owner[pat]; ok {
				return nil, &PatternCompilationError{Label: d.Label, Pattern: pat, Err: fmt.Errorf("%w: %q", ErrPatternCollision, prev)}
			}
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, &PatternCompilationError{Label: d.Label, Pattern: pat, Err: err}
			}
			owner[pat] = d.Label
			t.motifs = append(t.motifs, Compiled{Pattern: pat, Label: d.Label, Color: col, re: re})
		}
	}
	return t, nil
}

// Motifs returns the compiled patterns in registration order.
func (t *Table) Motifs() []Compiled { return append([]Compiled(nil), t.motifs...) }

// Labels returns each motif's label once, in definition order.
func (t *Table) Labels() []string { return append([]string(nil), t.labels...) }

// Color returns the color assigned to label.
func (t *Table) Color(label string) (RGB, bool) {
	c, ok := t.colors[label]
	return c, ok
}

// Len reports how many patterns the table holds.
func (t *Table) Len() int { return len(t.motifs) }
