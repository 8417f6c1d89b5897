package shapes

import "math"

// Shape produces the outline of a figure fitted to a frame.
type Shape interface {
	Path(r Rect) *Path
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc func(r Rect) *Path

// Path calls f(r).
func (f ShapeFunc) Path(r Rect) *Path {
	return f(r)
}

// Polygon is a shape with well-defined corners.
type Polygon interface {
	Shape
	Vertices(r Rect) []Point
}

// Insettable is a shape that can shrink itself before drawing.
type Insettable interface {
	Shape
	Inset(amount float64) Shape
}

// SizeFitter answers layout size negotiation.
type SizeFitter interface {
	SizeThatFits(proposal Size) Size
}

// FitSquare returns the largest square inside proposal, as a circle
// sizes itself. Infinite or NaN dimensions defer to the other one.
func FitSquare(proposal Size) Size {
	w, h := proposal.Width, proposal.Height
	switch {
	case !isFinite(w) && !isFinite(h):
		return Size{Width: 10, Height: 10}
	case !isFinite(w):
		w = h
	case !isFinite(h):
		h = w
	}
	side := math.Max(0, math.Min(w, h))
	return Size{Width: side, Height: side}
}

// FitProposal returns the proposal itself, as a rectangle sizes itself.
// Unspecified dimensions fall back to 10.
func FitProposal(proposal Size) Size {
	w, h := proposal.Width, proposal.Height
	if !isFinite(w) || w < 0 {
		w = 10
	}
	if !isFinite(h) || h < 0 {
		h = 10
	}
	return Size{Width: w, Height: h}
}
