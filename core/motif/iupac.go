// core/motif/iupac.go
package motif

import "strings"

/* ------------------------ ambiguity expansion ------------------------ */

// expansion maps one ambiguity code to the character class it stands for.
type expansion struct {
	codes string // both cases of the code letter
	class string // regexp character class, both cases
}

var (
	expandY = expansion{codes: "Yy", class: "[TCtc]"} // C or T
	expandU = expansion{codes: "Uu", class: "[Tt]"}   // RNA uracil read as T
)

func (x expansion) in(label string) bool { return strings.ContainsAny(label, x.codes) }

// apply replaces every occurrence of the code (either case) with its class.
func (x expansion) apply(label string) string {
	var b strings.Builder
	b.Grow(len(label) + 8)
	for i := 0; i < len(label); i++ {
		c := label[i]
		if strings.IndexByte(x.codes, c) >= 0 {
			b.WriteString(x.class)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Patterns lists the match patterns a label expands to, in registration order:
//
//	Y/y present → label with Y replaced by [TCtc]
//	U/u present → label with U replaced by [Tt]
//	otherwise   → the literal label
//
// The literal fallback hangs off the U test only, so a Y motif without U
// also registers its literal spelling ("AY" → "A[TCtc]", "AY") while a U
// motif does not ("AU" → "A[Tt]").
func Patterns(label string) []string {
	var out []string
	if expandY.in(label) {
		out = append(out, expandY.apply(label))
	}
	if expandU.in(label) {
		out = append(out, expandU.apply(label))
	} else {
		out = append(out, label)
	}
	return out
}
