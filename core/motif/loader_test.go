package motif

import (
	"strings"
	"testing"
)

func TestLoadList(t *testing.T) {
	in := "ygcy\n\n# comment\n  GCAUG  \ncatag\nYYYYYYYYYY\nygcy\n"
	ds, dups, err := LoadList(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadList: %v", err)
	}
	var got []string
	for _, d := range ds {
		got = append(got, d.Label)
	}
	if strings.Join(got, ",") != "ygcy,GCAUG,catag,YYYYYYYYYY" {
		t.Fatalf("labels = %v", got)
	}
	if len(dups) != 1 || dups[0] != "ygcy" {
		t.Fatalf("dups = %v", dups)
	}
}
