// Package render replays a layout.Drawing on a gonum vg canvas and encodes
// it as SVG, PNG or PDF.
//
// Design:
//   • Layout owns every coordinate; render only flips the y axis.
//   • New formats register in the encoders map.
package render
