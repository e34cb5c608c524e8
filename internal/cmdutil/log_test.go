package cmdutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name           string
		quiet, verbose bool
		wantWarn       bool
		wantDebug      bool
	}{
		{"default", false, false, true, false},
		{"quiet", true, false, false, false},
		{"verbose", false, true, true, true},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		log := NewLogger(&buf, tc.quiet, tc.verbose)
		log.Warn("careful")
		log.Debug("details")
		log.Error("broken")
		out := buf.String()
		if got := strings.Contains(out, "careful"); got != tc.wantWarn {
			t.Errorf("%s: warn logged=%v, want %v", tc.name, got, tc.wantWarn)
		}
		if got := strings.Contains(out, "details"); got != tc.wantDebug {
			t.Errorf("%s: debug logged=%v, want %v", tc.name, got, tc.wantDebug)
		}
		if !strings.Contains(out, "broken") {
			t.Errorf("%s: error not logged", tc.name)
		}
	}
}
