// internal/render/formats.go
package render

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"motifmark-core/layout"
)

// pngDPI maps one canvas unit (a vg point) to one pixel.
const pngDPI = 72

// Image encoders (format → handler), keyed by file extension.
var encoders = map[string]func(io.Writer, layout.Drawing) error{
	"svg": WriteSVG,
	"png": WritePNG,
	"pdf": WritePDF,
}

// Formats lists the supported output formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for k := range encoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has an encoder.
func Known(format string) bool {
	_, ok := encoders[format]
	return ok
}

// Write encodes d as format.
func Write(format string, w io.Writer, d layout.Drawing) error {
	fn, ok := encoders[format]
	if !ok {
		return fmt.Errorf("unknown image format %q (no encoder registered)", format)
	}
	return fn(w, d)
}

func size(d layout.Drawing) (vg.Length, vg.Length) {
	return vg.Length(d.Width), vg.Length(d.Height)
}

// WriteSVG writes the vector image.
func WriteSVG(w io.Writer, d layout.Drawing) error {
	c := vgsvg.New(size(d))
	Paint(c, d)
	_, err := c.WriteTo(w)
	return err
}

// WritePNG writes a raster copy at 72 dpi, one pixel per canvas unit.
func WritePNG(w io.Writer, d layout.Drawing) error {
	width, height := size(d)
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(pngDPI))
	Paint(c, d)
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// WritePDF writes a single-page PDF.
func WritePDF(w io.Writer, d layout.Drawing) error {
	c := vgpdf.New(size(d))
	Paint(c, d)
	_, err := c.WriteTo(w)
	return err
}
