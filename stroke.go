package shapes

import "math"

// LineCap is the shape of the ends of open strokes.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape of stroke corners.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle configures stroke outline expansion.
type StrokeStyle struct {
	// Width is the line width. Zero or negative widths draw nothing.
	Width float64

	Cap  LineCap
	Join LineJoin

	// MiterLimit is the longest miter, as a multiple of the width, before
	// a miter join is drawn as a bevel.
	MiterLimit float64

	// Dash alternates dash and gap lengths. Empty means solid.
	Dash []float64

	// DashPhase is the distance into the pattern at which the stroke
	// starts.
	DashPhase float64
}

// DefaultStrokeStyle returns a solid 1-unit line with butt caps and miter
// joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10,
	}
}

// WithWidth returns a copy with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the given cap.
func (s StrokeStyle) WithCap(c LineCap) StrokeStyle {
	s.Cap = c
	return s
}

// WithJoin returns a copy with the given join.
func (s StrokeStyle) WithJoin(j LineJoin) StrokeStyle {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy with its own copy of dash and the given phase.
func (s StrokeStyle) WithDash(dash []float64, phase float64) StrokeStyle {
	s.Dash = append([]float64(nil), dash...)
	s.DashPhase = phase
	return s
}

// IsDashed reports whether the dash array has any positive entry.
func (s StrokeStyle) IsDashed() bool {
	for _, d := range s.Dash {
		if math.Abs(d) > 0 {
			return true
		}
	}
	return false
}

// LineWidth picks a stroke width either absolutely or relative to the
// frame being stroked.
type LineWidth struct {
	Absolute float64
	// Ratio is a fraction of the frame's breadth, clamped to [0, 0.5].
	Ratio float64
}

// Resolve returns the width for bounds. A positive Absolute wins over
// Ratio.
func (lw LineWidth) Resolve(bounds Rect) float64 {
	if lw.Absolute > 0 {
		return lw.Absolute
	}
	return clamp(lw.Ratio, 0, 0.5) * bounds.Breadth()
}
