// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"motifmark-core/fasta"
	"motifmark-core/layout"
	"motifmark-core/motif"
	"motifmark/internal/cli"
	"motifmark/internal/cliutil"
	"motifmark/internal/cmdutil"
	"motifmark/internal/output"
	"motifmark/internal/pipeline"
	"motifmark/internal/render"
	"motifmark/internal/version"
)

const (
	exitOK        = 0
	exitInput     = 2
	exitWrite     = 3
	exitCancelled = 130
)

// flush writes pending stdout bytes and maps the outcome to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("motifmark")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, exitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, exitInput)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "motifmark version %s\n", version.Version)
		return flush(outw, stderr, exitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	table, err := loadMotifs(opts, log)
	if err != nil {
		log.Error(err)
		return exitInput
	}

	cfg, err := layoutConfig(opts)
	if err != nil {
		log.Error(err)
		return exitInput
	}

	in, err := fasta.Open(opts.FastaFile)
	if err != nil {
		log.Error(err)
		return exitInput
	}
	var rows []layout.Row
	drawing, st, err := pipeline.Run(parent, cfg, in, table, func(r layout.Row) error {
		log.WithFields(logrus.Fields{
			"record": r.Features.Record.ID(),
			"exon":   fmt.Sprintf("%d+%d", r.Features.Exon.Start, r.Features.Exon.Length),
			"motifs": len(r.Features.Motifs),
		}).Debug("laid out")
		rows = append(rows, r)
		return nil
	})
	_ = in.Close()
	if st.Discarded > 0 {
		log.Warnf("%s: %d sequence line(s) before the first header discarded", opts.FastaFile, st.Discarded)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return exitCancelled
		}
		log.Error(err)
		return exitInput
	}
	log.WithFields(logrus.Fields{
		"records":     st.Records,
		"occurrences": st.Occurrences,
	}).Debug("layout done")

	for _, format := range opts.Formats {
		path := cliutil.OutputPath(opts.OutDir, opts.Prefix, opts.FastaFile, format)
		if err := writeImage(path, format, drawing); err != nil {
			log.Error(err)
			return exitWrite
		}
		log.Infof("wrote %s", path)
	}

	if err := output.Write(opts.Report, outw, rows, table, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return exitOK
		}
		log.Error(err)
		return exitWrite
	}
	return flush(outw, stderr, exitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadMotifs(opts cli.Options, log *logrus.Logger) (*motif.Table, error) {
	f, err := fasta.Open(opts.MotifFile)
	if err != nil {
		return nil, err
	}
	defs, dups, err := motif.LoadList(f)
	_ = f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.MotifFile, err)
	}
	for _, d := range dups {
		log.Warnf("%s: duplicate motif %q ignored", opts.MotifFile, d)
	}
	if len(defs) == 0 {
		log.Warnf("%s: no motifs listed", opts.MotifFile)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	table, err := motif.Compile(defs, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"motifs":   len(table.Labels()),
		"patterns": table.Len(),
		"seed":     seed,
	}).Debug("motifs compiled")
	return table, nil
}

func layoutConfig(opts cli.Options) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	sp, err := layout.ParseSpacing(opts.Spacing)
	if err != nil {
		return cfg, err
	}
	cfg.Spacing = sp
	cfg.Scale = opts.Scale
	cfg.Width = opts.Width
	cfg.Height = opts.Height
	cfg.LayoutHeight = opts.Height * 0.8
	return cfg, cfg.Validate()
}

// writeImage renders into memory first so a failed encode leaves no file behind.
func writeImage(path, format string, d layout.Drawing) error {
	var buf bytes.Buffer
	if err := render.Write(format, &buf, d); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
