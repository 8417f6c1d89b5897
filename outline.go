package shapes

import (
	"log/slog"

	"github.com/gogpu/shapes/internal/outline"
)

// StrokedPath returns the filled outline of p stroked with style. The
// path is dashed first when the style has a dash array. Fill the result
// with the nonzero rule.
func StrokedPath(p *Path, style StrokeStyle, opts ...StrokeOption) *Path {
	if p.IsEmpty() || !(style.Width > 0) {
		return NewPath()
	}
	o := resolveStrokeOptions(opts)

	src := p
	if style.IsDashed() {
		src = Dashed(p, style.Dash, style.DashPhase, opts...)
	}

	flat := src.Flatten(o.tolerance)
	lines := make([]outline.Polyline, len(flat))
	for i, pl := range flat {
		pts := make([]outline.Point, len(pl.Points))
		for j, pt := range pl.Points {
			pts[j] = outline.Point{X: pt.X, Y: pt.Y}
		}
		lines[i] = outline.Polyline{Points: pts, Closed: pl.Closed}
	}

	contours := outline.Expand(lines, outline.Style{
		Width:      style.Width,
		Cap:        outline.Cap(style.Cap),
		Join:       outline.Join(style.Join),
		MiterLimit: style.MiterLimit,
		Tolerance:  o.tolerance,
	})
	Logger().Debug("stroke expanded",
		slog.Float64("width", style.Width),
		slog.Int("subpaths", len(lines)),
		slog.Int("contours", len(contours)),
	)

	out := NewPath()
	for _, c := range contours {
		pts := make([]Point, len(c))
		for i, pt := range c {
			pts[i] = Point{X: pt.X, Y: pt.Y}
		}
		out.AddPolygon(pts)
	}
	return out
}
