// core/layout/engine.go
package layout

import (
	"errors"
	"math"

	"motifmark-core/feature"
	"motifmark-core/motif"
)

// Row is one record placed on the canvas.
type Row struct {
	Index    int
	Y        float64
	Features feature.Features
}

// Commands draws the row: header text above it, then the gene line, the exon
// and one segment per motif occurrence.
func (r Row) Commands(cfg Config, t *motif.Table) ([]Command, error) {
	f := r.Features
	x := func(off int) float64 { return cfg.LeftMargin + float64(off)*cfg.Scale }

	out := make([]Command, 0, 3+len(f.Motifs))
	out = append(out,
		text(Point{cfg.LeftMargin, r.Y - cfg.HeaderOffset}, cfg.HeaderFontSize, f.Record.Header),
		line(Point{x(0), r.Y}, Point{x(len(f.Record.Seq)), r.Y}, cfg.GeneWidth, motif.RGB{}),
		line(Point{x(f.Exon.Start), r.Y}, Point{x(f.Exon.End()), r.Y}, cfg.ExonWidth, motif.RGB{}),
	)
	for _, o := range f.Motifs {
		col, ok := t.Color(o.Label)
		if !ok {
			return nil, &UnknownMotifError{Record: f.Record.Header, Label: o.Label}
		}
		out = append(out, line(Point{x(o.Start), r.Y}, Point{x(o.End()), r.Y}, cfg.MotifWidth, col))
	}
	return out, nil
}

// Engine lays out a known number of rows in input order, then the legend.
type Engine struct {
	cfg       Config
	table     *motif.Table
	total     int
	rowHeight float64

	next   int
	right  float64 // rightmost x drawn by any row
	bottom float64 // lowest y drawn by any row
	cmds   []Command
}

// New prepares a layout for total records.
func New(cfg Config, t *motif.Table, total int) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("layout: nil motif table")
	}
	if total < 1 {
		return nil, errors.New("layout: need at least one record")
	}
	rowHeight := cfg.LayoutHeight / float64(total)
	if cfg.Spacing == SpacingUniform {
		// headers stay below the previous row's line
		cfg.HeaderOffset = math.Min(cfg.HeaderOffset, rowHeight/2)
	}
	return &Engine{
		cfg:       cfg,
		table:     t,
		total:     total,
		rowHeight: rowHeight,
		right:     cfg.LeftMargin,
	}, nil
}

// textAdvance estimates the width of s at size: 0.6em per character.
func textAdvance(size float64, s string) float64 {
	return 0.6 * size * float64(len(s))
}

// RowY returns the vertical position of row i (0-based).
func (e *Engine) RowY(i int) float64 {
	if e.cfg.Spacing == SpacingLegacy {
		return e.rowHeight + float64(i)*e.cfg.RowPitch
	}
	return e.rowHeight * float64(i+1)
}

// Add places the next record and appends its commands.
func (e *Engine) Add(f feature.Features) (Row, error) {
	if e.next >= e.total {
		return Row{}, errors.New("layout: more records than announced")
	}
	r := Row{Index: e.next, Y: e.RowY(e.next), Features: f}
	cmds, err := r.Commands(e.cfg, e.table)
	if err != nil {
		return Row{}, err
	}
	e.cmds = append(e.cmds, cmds...)
	e.next++
	e.right = math.Max(e.right, e.cfg.LeftMargin+float64(len(f.Record.Seq))*e.cfg.Scale)
	e.right = math.Max(e.right, e.cfg.LeftMargin+textAdvance(e.cfg.HeaderFontSize, f.Record.Header))
	e.bottom = math.Max(e.bottom, r.Y+math.Max(e.cfg.ExonWidth, e.cfg.MotifWidth)/2)
	return r, nil
}

// LegendX is where the legend starts: the configured column, pushed right
// of the longest gene line or header placed so far.
func (e *Engine) LegendX() float64 {
	return math.Max(e.cfg.LegendX, e.right+e.cfg.LegendGap)
}

// Legend draws the title and one swatch plus label per motif, in definition order.
func (e *Engine) Legend() []Command {
	c := e.cfg
	x := e.LegendX()
	labels := e.table.Labels()
	out := make([]Command, 0, 1+2*len(labels))
	out = append(out, text(Point{x, c.LegendTitleY}, c.LegendTitleSize, c.LegendTitle))
	for i, l := range labels {
		y := c.LegendTop + float64(i)*c.LegendPitch
		col, _ := e.table.Color(l)
		out = append(out,
			line(Point{x, y}, Point{x + c.LegendSwatch, y}, c.LegendLineWidth, col),
			text(Point{x + c.LegendSwatch + c.LegendTextGap, y}, c.LegendFontSize, l),
		)
	}
	return out
}

// Finish appends the legend and returns the drawing, grown where rows or
// legend would not fit the configured canvas.
func (e *Engine) Finish() Drawing {
	c := e.cfg
	legend := e.Legend()

	width := c.Width
	height := math.Max(c.Height, e.bottom+c.HeaderFontSize)
	for _, cmd := range legend {
		switch cmd.Kind {
		case KindLine:
			width = math.Max(width, cmd.To.X+c.LegendGap)
		case KindText:
			width = math.Max(width, cmd.At.X+textAdvance(cmd.Size, cmd.Text)+c.LegendTextGap)
		}
		height = math.Max(height, cmd.At.Y+c.LegendPitch)
	}

	all := make([]Command, 0, len(e.cmds)+len(legend))
	all = append(all, e.cmds...)
	all = append(all, legend...)
	return Drawing{Width: width, Height: height, Commands: all}
}

// Rows reports how many rows have been placed.
func (e *Engine) Rows() int { return e.next }
