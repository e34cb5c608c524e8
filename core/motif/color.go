package motif

import (
	"fmt"
	"math"
)

// RGB is one motif color; every channel lies in [0, 1).
type RGB struct {
	R, G, B float64
}

func (c RGB) String() string { return fmt.Sprintf("(%.1f, %.1f, %.1f)", c.R, c.G, c.B) }

// Source is the random stream colors are drawn from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// maxChannel caps each channel so no motif is drawn pure white.
const maxChannel = 0.9

// RandomRGB draws three independent channels uniformly over [0, 0.9],
// each rounded to one decimal place.
func RandomRGB(src Source) RGB {
	return RGB{R: channel(src), G: channel(src), B: channel(src)}
}

func channel(src Source) float64 {
	return math.Round(src.Float64()*maxChannel*10) / 10
}
