// core/layout/config.go
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Spacing selects how rows are placed vertically.
type Spacing int

const (
	// SpacingUniform places row i at rowHeight*(i+1).
	SpacingUniform Spacing = iota
	// SpacingLegacy places row 0 at rowHeight and every later row RowPitch
	// below the one before it, whatever the record count.
	SpacingLegacy
)

func (s Spacing) String() string {
	switch s {
	case SpacingUniform:
		return "uniform"
	case SpacingLegacy:
		return "legacy"
	}
	return fmt.Sprintf("Spacing(%d)", int(s))
}

// ParseSpacing accepts "uniform" or "legacy" (any case).
func ParseSpacing(s string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "":
		return SpacingUniform, nil
	case "legacy":
		return SpacingLegacy, nil
	}
	return 0, fmt.Errorf("unknown spacing %q (want uniform | legacy)", s)
}

// Config holds every drawing constant, in canvas units with a top-left origin.
type Config struct {
	// Canvas
	Width        float64
	Height       float64
	LayoutHeight float64 // vertical span shared out between rows

	// Rows
	LeftMargin     float64
	Scale          float64 // canvas units per base
	GeneWidth      float64
	ExonWidth      float64
	MotifWidth     float64
	HeaderOffset   float64 // header baseline sits this far above the row
	HeaderFontSize float64
	RowPitch       float64 // SpacingLegacy only
	Spacing        Spacing

	// Legend
	LegendTitle     string
	LegendX         float64
	LegendTitleY    float64
	LegendTop       float64 // y of the first entry
	LegendPitch     float64
	LegendSwatch    float64 // swatch length
	LegendLineWidth float64
	LegendTextGap   float64 // swatch end to label start
	LegendGap       float64 // minimum distance from the longest row
	LegendFontSize  float64
	LegendTitleSize float64
}

// DefaultConfig is an 800x1000 canvas with rows sharing the top 800 units.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       1000,
		LayoutHeight: 800,

		LeftMargin:     100,
		Scale:          1,
		GeneWidth:      5,
		ExonWidth:      35,
		MotifWidth:     30,
		HeaderOffset:   40,
		HeaderFontSize: 20,
		RowPitch:       200,
		Spacing:        SpacingUniform,

		LegendTitle:     "Motifs",
		LegendX:         650,
		LegendTitleY:    50,
		LegendTop:       70,
		LegendPitch:     22,
		LegendSwatch:    15,
		LegendLineWidth: 10,
		LegendTextGap:   5,
		LegendGap:       50,
		LegendFontSize:  10,
		LegendTitleSize: 20,
	}
}

// Validate rejects sizes the layout cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.New("layout: canvas size must be positive")
	case c.LayoutHeight <= 0:
		return errors.New("layout: layout height must be positive")
	case c.Scale <= 0:
		return errors.New("layout: scale must be positive")
	case c.Spacing == SpacingLegacy && c.RowPitch <= 0:
		return errors.New("layout: row pitch must be positive")
	case c.Spacing != SpacingUniform && c.Spacing != SpacingLegacy:
		return fmt.Errorf("layout: unknown spacing %d", int(c.Spacing))
	}
	return nil
}
