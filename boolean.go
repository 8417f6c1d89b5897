package shapes

import (
	"log/slog"

	polyclip "github.com/ctessum/polyclip-go"
)

// Union returns the region covered by a or b. An empty operand yields the
// other operand unchanged.
func Union(a, b *Path, opts ...BooleanOption) *Path {
	switch {
	case a.IsEmpty():
		return b.Clone()
	case b.IsEmpty():
		return a.Clone()
	}
	return clip(a, b, polyclip.UNION, opts)
}

// Subtract returns the region of a not covered by b. Subtracting an empty
// path yields a unchanged; subtracting from an empty path yields an empty
// path.
func Subtract(a, b *Path, opts ...BooleanOption) *Path {
	switch {
	case a.IsEmpty():
		return NewPath()
	case b.IsEmpty():
		return a.Clone()
	}
	return clip(a, b, polyclip.DIFFERENCE, opts)
}

// Intersect returns the region covered by both a and b.
func Intersect(a, b *Path, opts ...BooleanOption) *Path {
	if a.IsEmpty() || b.IsEmpty() {
		return NewPath()
	}
	return clip(a, b, polyclip.INTERSECTION, opts)
}

// Xor returns the region covered by exactly one of a and b.
func Xor(a, b *Path, opts ...BooleanOption) *Path {
	switch {
	case a.IsEmpty():
		return b.Clone()
	case b.IsEmpty():
		return a.Clone()
	}
	return clip(a, b, polyclip.XOR, opts)
}

// Normalize resolves overlapping subpaths into a set of simple contours
// that fill the same region under rule. Contours are oriented so the
// result fills identically under either rule.
func Normalize(p *Path, rule FillRule, opts ...BooleanOption) *Path {
	if p.IsEmpty() {
		return NewPath()
	}
	o := resolveBooleanOptions(opts)
	op := polyclip.UNION
	if rule == EvenOdd {
		op = polyclip.XOR
	}

	var acc polyclip.Polygon
	for _, c := range toPolygon(p, o.tolerance) {
		acc = acc.Construct(op, polyclip.Polygon{c})
	}
	return fromPolygon(acc)
}

func clip(a, b *Path, op polyclip.Op, opts []BooleanOption) *Path {
	o := resolveBooleanOptions(opts)
	subject := toPolygon(a, o.tolerance)
	clipping := toPolygon(b, o.tolerance)
	result := subject.Construct(op, clipping)

	Logger().Debug("boolean operation",
		slog.Int("op", int(op)),
		slog.Int("subject_contours", len(subject)),
		slog.Int("clip_contours", len(clipping)),
		slog.Int("result_contours", len(result)),
	)
	return fromPolygon(result)
}

// toPolygon flattens p into contours. Degenerate subpaths with fewer than
// three vertices enclose nothing and are dropped.
func toPolygon(p *Path, tolerance float64) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, pl := range p.Flatten(tolerance) {
		if len(pl.Points) < 3 {
			continue
		}
		c := make(polyclip.Contour, 0, len(pl.Points))
		for _, pt := range pl.Points {
			if !pt.IsFinite() {
				continue
			}
			c = append(c, polyclip.Point{X: pt.X, Y: pt.Y})
		}
		if len(c) >= 3 {
			poly = append(poly, c)
		}
	}
	return poly
}

// fromPolygon converts clipper output back into a path. Outer contours run
// clockwise on screen and holes counter-clockwise, decided by how many
// other contours enclose each one.
func fromPolygon(poly polyclip.Polygon) *Path {
	lines := make([]Polyline, 0, len(poly))
	for _, c := range poly {
		if len(c) < 3 {
			continue
		}
		pts := make([]Point, len(c))
		for i, v := range c {
			pts[i] = Point{X: v.X, Y: v.Y}
		}
		lines = append(lines, Polyline{Points: pts, Closed: true})
	}

	out := NewPath()
	for i, pl := range lines {
		depth := 0
		sample := pl.Points[0]
		for j, other := range lines {
			if i != j && windingOf([]Polyline{other}, sample) != 0 {
				depth++
			}
		}
		pts := pl.Points
		if (pl.Area() > 0) != (depth%2 == 0) {
			pts = reversedPoints(pts)
		}
		out.AddPolygon(pts)
	}
	return out
}

func reversedPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
