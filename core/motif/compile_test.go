package motif

import (
	"errors"
	"math/rand"
	"regexp/syntax"
	"strings"
	"testing"
)

// stepSource replays vals cyclically.
type stepSource struct {
	vals []float64
	i    int
}

func (s *stepSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func defs(labels ...string) []Definition {
	out := make([]Definition, len(labels))
	for i, l := range labels {
		out[i] = Definition{Label: l}
	}
	return out
}

func patterns(t *Table) []string {
	var out []string
	for _, m := range t.Motifs() {
		out = append(out, m.Pattern)
	}
	return out
}

func TestCompileExpansion(t *testing.T) {
	tests := []struct {
		label string
		want  []string
	}{
		{"ACGT", []string{"ACGT"}},
		{"AY", []string{"A[TCtc]", "AY"}},
		{"ygcy", []string{"[TCtc]gc[TCtc]", "ygcy"}},
		{"AU", []string{"A[Tt]"}},
		{"uuAu", []string{"[Tt][Tt]A[Tt]"}},
		{"YU", []string{"[TCtc]U", "Y[Tt]"}},
	}
	for _, tc := range tests {
		tab, err := Compile(defs(tc.label), rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("%s: compile: %v", tc.label, err)
		}
		got := patterns(tab)
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Errorf("%s: patterns %q, want %q", tc.label, got, tc.want)
		}
		for _, m := range tab.Motifs() {
			if m.Label != tc.label {
				t.Errorf("%s: pattern %q carries label %q", tc.label, m.Pattern, m.Label)
			}
		}
	}
}

func TestCompileYClass(t *testing.T) {
	tab, err := Compile(defs("AY"), &stepSource{vals: []float64{0.5}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	expanded := tab.Motifs()[0]
	for c := 0; c < 256; c++ {
		s := "A" + string(rune(c))
		matched := len(expanded.FindAll(s)) == 1
		want := strings.ContainsRune("TCtc", rune(c))
		if matched != want {
			t.Errorf("A[TCtc] on %q: matched=%v want %v", s, matched, want)
		}
	}
}

func TestCompileSharedColor(t *testing.T) {
	src := &stepSource{vals: []float64{0.0, 1.0 / 3, 0.99, 0.5, 0.2, 0.7}}
	tab, err := Compile(defs("AY", "CU", "GG"), src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want, ok := tab.Color("AY")
	if !ok {
		t.Fatalf("no color for AY")
	}
	if want != (RGB{R: 0, G: 0.3, B: 0.9}) {
		t.Fatalf("AY color = %v", want)
	}
	for _, m := range tab.Motifs() {
		c, _ := tab.Color(m.Label)
		if m.Color != c {
			t.Errorf("pattern %q color %v differs from label color %v", m.Pattern, m.Color, c)
		}
	}
	if got := tab.Labels(); strings.Join(got, ",") != "AY,CU,GG" {
		t.Errorf("labels = %v", got)
	}
	if tab.Len() != 4 {
		t.Errorf("Len = %d, want 4", tab.Len())
	}
}

func TestCompileDeterministicSeed(t *testing.T) {
	a, _ := Compile(defs("AC", "GT", "YY"), rand.New(rand.NewSource(42)))
	b, _ := Compile(defs("AC", "GT", "YY"), rand.New(rand.NewSource(42)))
	for _, l := range a.Labels() {
		ca, _ := a.Color(l)
		cb, _ := b.Color(l)
		if ca != cb {
			t.Errorf("%s: %v != %v with same seed", l, ca, cb)
		}
	}
}

func TestCompileDuplicateLabel(t *testing.T) {
	tab, err := Compile(defs("AC", "AC"), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if tab.Len() != 1 || len(tab.Labels()) != 1 {
		t.Fatalf("duplicate label registered twice: %v", patterns(tab))
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		sentry error
	}{
		{"bad syntax", []string{"AC(G"}, nil},
		{"collision", []string{"AY", "A[TCtc]"}, ErrPatternCollision},
		{"empty", []string{""}, nil},
	}
	for _, tc := range tests {
		_, err := Compile(defs(tc.labels...), rand.New(rand.NewSource(1)))
		var pErr *PatternCompilationError
		if !errors.As(err, &pErr) {
			t.Errorf("%s: want *PatternCompilationError, got %v", tc.name, err)
			continue
		}
		if tc.sentry != nil && !errors.Is(err, tc.sentry) {
			t.Errorf("%s: want %v in chain, got %v", tc.name, tc.sentry, err)
		}
	}
	_, err := Compile(defs("AC(G"), rand.New(rand.NewSource(1)))
	var syn *syntax.Error
	if !errors.As(err, &syn) {
		t.Errorf("syntax error not wrapped: %v", err)
	}
}

func TestRandomRGBRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		c := RandomRGB(r)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 0.9 {
				t.Fatalf("channel %v out of [0, 0.9]", v)
			}
			if scaled := v * 10; scaled-float64(int(scaled+0.5)) > 1e-9 || float64(int(scaled+0.5))-scaled > 1e-9 {
				t.Fatalf("channel %v has more than one decimal", v)
			}
		}
	}
}
