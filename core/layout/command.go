package layout

import "motifmark-core/motif"

// Point is a canvas position; Y grows downward.
type Point struct {
	X, Y float64
}

// Kind tells a drawing backend what to do with a Command.
type Kind int

const (
	KindLine Kind = iota // stroke From→To
	KindText             // draw Text with its baseline starting at At
)

// Command is one primitive drawing step. Unused fields are zero.
type Command struct {
	Kind  Kind
	From  Point
	To    Point
	Width float64
	At    Point
	Size  float64
	Text  string
	Color motif.RGB // zero value is black
}

func line(from, to Point, width float64, col motif.RGB) Command {
	return Command{Kind: KindLine, From: from, To: to, Width: width, Color: col}
}

func text(at Point, size float64, s string) Command {
	return Command{Kind: KindText, At: at, Size: size, Text: s}
}

// Drawing is a finished image: its size and every command in paint order.
type Drawing struct {
	Width    float64
	Height   float64
	Commands []Command
}
