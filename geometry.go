package pugl

import "github.com/openchord/go-pugl/internal/native"

// Coord is a position in view coordinates. The native library uses
// doubles throughout, so fractional positions are preserved.
type Coord struct {
	X float64
	Y float64
}

// Size is a width and height pair.
type Size struct {
	W float64
	H float64
}

// Rect is a view frame: position relative to the parent window or
// screen origin, plus size.
type Rect struct {
	Pos  Coord
	Size Size
}

func (r Rect) frame() native.Frame {
	return native.Frame{X: r.Pos.X, Y: r.Pos.Y, Width: r.Size.W, Height: r.Size.H}
}

func rectOf(f native.Frame) Rect {
	return Rect{Pos: Coord{X: f.X, Y: f.Y}, Size: Size{W: f.Width, H: f.Height}}
}
