package shapes

// PathBuilder provides a fluent interface for path construction. Every
// method returns the builder for chaining.
//
// Example:
//
//	p := shapes.BuildPath().
//		MoveTo(shapes.Pt(0, 0)).
//		LineTo(shapes.Pt(10, 0)).
//		ArcTo(shapes.Pt(20, 0), shapes.Pt(20, 10), 4).
//		Close().
//		Build()
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo starts a new subpath.
func (b *PathBuilder) MoveTo(p Point) *PathBuilder {
	b.path.MoveTo(p)
	return b
}

// LineTo draws a line.
func (b *PathBuilder) LineTo(p Point) *PathBuilder {
	b.path.LineTo(p)
	return b
}

// QuadTo draws a quadratic curve.
func (b *PathBuilder) QuadTo(ctrl, p Point) *PathBuilder {
	b.path.QuadTo(ctrl, p)
	return b
}

// CubicTo draws a cubic curve.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, p Point) *PathBuilder {
	b.path.CubicTo(ctrl1, ctrl2, p)
	return b
}

// Arc adds a circular arc; see Path.Arc.
func (b *PathBuilder) Arc(center Point, radius, start, end float64, clockwise bool) *PathBuilder {
	b.path.Arc(center, radius, start, end, clockwise)
	return b
}

// RelativeArc adds an arc swept by delta; see Path.RelativeArc.
func (b *PathBuilder) RelativeArc(center Point, radius, start, delta float64) *PathBuilder {
	b.path.RelativeArc(center, radius, start, delta)
	return b
}

// ArcTo rounds the corner at tangent1; see Path.ArcTo.
func (b *PathBuilder) ArcTo(tangent1, tangent2 Point, radius float64) *PathBuilder {
	b.path.ArcTo(tangent1, tangent2, radius)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle.
func (b *PathBuilder) Rect(r Rect) *PathBuilder {
	b.path.AddRect(r)
	return b
}

// Ellipse adds the ellipse inscribed in r.
func (b *PathBuilder) Ellipse(r Rect) *PathBuilder {
	b.path.AddEllipse(r)
	return b
}

// Circle adds a circle.
func (b *PathBuilder) Circle(center Point, radius float64) *PathBuilder {
	b.path.AddCircle(center, radius)
	return b
}

// Polygon adds a closed polygon through vertices.
func (b *PathBuilder) Polygon(vertices []Point) *PathBuilder {
	b.path.AddPolygon(vertices)
	return b
}

// Path appends another path.
func (b *PathBuilder) Path(p *Path) *PathBuilder {
	b.path.AddPath(p)
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
