// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"motifmark/internal/cliutil"
	"motifmark/internal/output"
	"motifmark/internal/render"
	"motifmark/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	FastaFile string
	MotifFile string

	// Output
	OutDir  string
	Prefix  string
	Formats []string
	Report  string // none | text | json
	Header  bool   // true unless --no-header

	// Drawing
	Seed    int64 // 0 = seed from the clock
	Spacing string
	Scale   float64
	Width   float64
	Height  float64

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the motifmark usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(n string) string {
			if f := fs.Lookup(n); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – draw exons and sequence motifs on FASTA records\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s -f seqs.fa -m motifs.txt [flags]\n  %s -m motifs.txt seqs.fa [flags]\n", name, name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -f, --fasta file            FASTA file (wrapped or not, gzip ok) or '-' for STDIN [*]")
		fmt.Fprintln(out, "  -m, --motif file            Motif list, one per line (Y = C/T, U = T) [*]")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out-dir dir           Directory for images [%s]\n", def("out-dir"))
		fmt.Fprintln(out, "      --prefix name           Image base name (default: FASTA name up to the first '.')")
		fmt.Fprintf(out, "      --format list           Image formats: %s [%s]\n", strings.Join(render.Formats(), ","), def("format"))
		fmt.Fprintf(out, "      --report string         Feature report on STDOUT: %s [%s]\n", strings.Join(output.Formats(), " | "), def("report"))
		fmt.Fprintf(out, "      --no-header             Suppress header line in text report [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nDrawing:")
		fmt.Fprintf(out, "      --seed int              Color seed (0 = random per run) [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --spacing string        Row spacing: uniform | legacy [%s]\n", def("spacing"))
		fmt.Fprintf(out, "      --scale float           Canvas units per base [%s]\n", def("scale"))
		fmt.Fprintf(out, "      --width float           Canvas width [%s]\n", def("width"))
		fmt.Fprintf(out, "      --height float          Canvas height [%s]\n", def("height"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log per-record details [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is taken as the FASTA file.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool
	formats := &listValue{vals: []string{"svg", "png"}}

	// Input
	fs.StringVar(&opt.FastaFile, "fasta", "", "FASTA file or '-'")
	fs.StringVar(&opt.FastaFile, "f", "", "alias of --fasta")
	fs.StringVar(&opt.MotifFile, "motif", "", "motif list file")
	fs.StringVar(&opt.MotifFile, "m", "", "alias of --motif")

	// Output
	fs.StringVar(&opt.OutDir, "out-dir", ".", "directory for images")
	fs.StringVar(&opt.OutDir, "o", ".", "alias of --out-dir")
	fs.StringVar(&opt.Prefix, "prefix", "", "image base name")
	fs.Var(formats, "format", "image formats (comma-separated or repeatable)")
	fs.StringVar(&opt.Report, "report", output.FormatNone, "feature report: "+strings.Join(output.Formats(), " | "))
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text report")

	// Drawing
	fs.Int64Var(&opt.Seed, "seed", 0, "color seed (0 = random)")
	fs.StringVar(&opt.Spacing, "spacing", "uniform", "row spacing: uniform | legacy")
	fs.Float64Var(&opt.Scale, "scale", 1, "canvas units per base")
	fs.Float64Var(&opt.Width, "width", 800, "canvas width")
	fs.Float64Var(&opt.Height, "height", 1000, "canvas height")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-record details")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.Formats = formats.unique()

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs[1:], " "))
	case len(posArgs) == 1 && opt.FastaFile != "":
		return opt, errors.New("FASTA given both as --fasta and as an argument")
	case len(posArgs) == 1:
		opt.FastaFile = posArgs[0]
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	if o.FastaFile == "" {
		return errors.New("a FASTA file is required (--fasta)")
	}
	if o.MotifFile == "" {
		return errors.New("a motif list is required (--motif)")
	}
	if o.FastaFile == "-" && o.MotifFile == "-" {
		return errors.New("--fasta and --motif cannot both read STDIN")
	}
	if o.FastaFile == "-" && o.Prefix == "" && len(o.Formats) > 0 {
		return errors.New("--prefix is required when reading FASTA from STDIN")
	}
	for _, f := range o.Formats {
		if !render.Known(f) {
			return fmt.Errorf("invalid --format %q (want %s)", f, strings.Join(render.Formats(), ","))
		}
	}
	if !output.Known(o.Report) {
		return fmt.Errorf("invalid --report %q (want %s)", o.Report, strings.Join(output.Formats(), ", "))
	}
	if len(o.Formats) == 0 && o.Report == output.FormatNone {
		return errors.New("nothing to do: --format is empty and --report is none")
	}
	if o.Scale <= 0 {
		return errors.New("--scale must be > 0")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New("--width and --height must be > 0")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// listValue is a repeatable, comma-splitting string flag. The first Set
// replaces the default.
type listValue struct {
	vals []string
	set  bool
}

func (l *listValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.vals, ",")
}

func (l *listValue) Set(v string) error {
	if !l.set {
		l.vals, l.set = nil, true
	}
	for _, part := range strings.Split(v, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			l.vals = append(l.vals, p)
		}
	}
	return nil
}

func (l *listValue) unique() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(l.vals))
	for _, v := range l.vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
