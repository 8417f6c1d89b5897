package shapes

import "math"

// FitMode selects how RecenterAndScale maps a path's bounds to a frame.
type FitMode int

const (
	// FitUniform scales both axes by the same factor so the longer side of
	// the bounds spans the frame's breadth.
	FitUniform FitMode = iota
	// FitStretch scales each axis independently to fill the frame.
	FitStretch
)

// fitTransform returns the matrix that centers bounds in target and
// scales it per mode. Axes with zero extent are only translated.
func fitTransform(bounds, target Rect, mode FitMode) Matrix {
	if bounds.IsNull() || target.IsNull() {
		return Identity()
	}
	w, h := bounds.Width(), bounds.Height()
	sx, sy := 1.0, 1.0
	switch mode {
	case FitStretch:
		if w > 0 {
			sx = target.Width() / w
		}
		if h > 0 {
			sy = target.Height() / h
		}
	default:
		if extent := math.Max(w, h); extent > 0 {
			sx = target.Breadth() / extent
			sy = sx
		}
	}
	c, tc := bounds.Mid(), target.Mid()
	return Translate(-c.X, -c.Y).Then(Scale(sx, sy)).Then(Translate(tc.X, tc.Y))
}

// RecenterAndScale moves p so its bounding box is centered in target and
// scales it per mode.
func RecenterAndScale(p *Path, target Rect, mode FitMode) *Path {
	if p.IsEmpty() {
		return NewPath()
	}
	return p.Transform(fitTransform(p.BoundingBox(), target, mode))
}
