// internal/render/paint.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"motifmark-core/layout"
	"motifmark-core/motif"
)

// Typeface draws every header and legend label.
var Typeface = sans()

func sans() font.Font {
	f := plot.DefaultFont
	f.Variant = "Sans"
	return f
}

// Color converts a motif color for a vg canvas.
func Color(c motif.RGB) color.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Paint replays d on c. Layout coordinates have a top-left origin; vg's is
// bottom-left, so every y is flipped against the drawing height.
func Paint(c vg.Canvas, d layout.Drawing) {
	at := func(p layout.Point) vg.Point {
		return vg.Point{X: vg.Length(p.X), Y: vg.Length(d.Height - p.Y)}
	}
	for _, cmd := range d.Commands {
		c.SetColor(Color(cmd.Color))
		switch cmd.Kind {
		case layout.KindLine:
			c.SetLineWidth(vg.Length(cmd.Width))
			var p vg.Path
			p.Move(at(cmd.From))
			p.Line(at(cmd.To))
			c.Stroke(p)
		case layout.KindText:
			if cmd.Text == "" {
				continue
			}
			face := font.DefaultCache.Lookup(Typeface, vg.Length(cmd.Size))
			c.FillString(face, at(cmd.At), cmd.Text)
		}
	}
}
