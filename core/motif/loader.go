// core/motif/loader.go
package motif

import (
	"bufio"
	"io"
	"strings"
)

// Definition is one motif as written in the motif list.
type Definition struct {
	Label string
}

// LoadList reads one motif label per line. Blank lines and '#' comments are
// skipped, and a label repeated later in the list keeps its first position.
// The second return lists the skipped repeats.
func LoadList(r io.Reader) ([]Definition, []string, error) {
	var (
		defs []Definition
		dups []string
		seen = map[string]struct{}{}
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if _, ok := seen[line]; ok {
			dups = append(dups, line)
			continue
		}
		seen[line] = struct{}{}
		defs = append(defs, Definition{Label: line})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return defs, dups, nil
}
