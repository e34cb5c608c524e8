// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"path/filepath"
	"strings"
)

// boolFlags returns names of flags that don't take a value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so flags
// may follow the FASTA argument. '-' is a positional (stdin); everything
// after '--' is positional. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !bools[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// Prefix derives the image base name from the FASTA path: the file name up
// to its first '.', so "data/Figure_1.fa.gz" gives "Figure_1".
func Prefix(fastaPath string) string {
	base := filepath.Base(fastaPath)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// OutputPath joins dir, the prefix (derived from fastaPath when empty) and
// the format extension.
func OutputPath(dir, prefix, fastaPath, format string) string {
	if prefix == "" {
		prefix = Prefix(fastaPath)
	}
	return filepath.Join(dir, prefix+"."+format)
}
