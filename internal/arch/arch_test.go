// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "motifmark/...", "motifmark-core/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"motifmark-core/": {"motifmark/"},
		"motifmark/internal/pipeline": {
			"motifmark/internal/app", "motifmark/internal/cli",
			"motifmark/internal/render", "motifmark/internal/output",
			"motifmark/cmd/",
		},
		"motifmark/internal/render": {
			"motifmark/internal/app", "motifmark/internal/cli",
			"motifmark/internal/pipeline", "motifmark/internal/output",
			"motifmark/cmd/",
		},
		"motifmark/internal/output": {
			"motifmark/internal/app", "motifmark/internal/cli",
			"motifmark/internal/pipeline", "motifmark/internal/render",
			"motifmark/cmd/",
		},
		"motifmark/pkg/api": {"motifmark/", "motifmark-core/"},
	}

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		seen++
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if seen == 0 {
		t.Fatalf("go list returned no packages")
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
