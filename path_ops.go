package shapes

import "math"

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	// Closed reports whether the last point connects back to the first.
	Closed bool
}

// Length returns the length of the polyline including the closing edge.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl.Points); i++ {
		l += pl.Points[i-1].Distance(pl.Points[i])
	}
	if pl.Closed && len(pl.Points) > 1 {
		l += pl.Points[len(pl.Points)-1].Distance(pl.Points[0])
	}
	return l
}

// Area returns the signed area of the polyline treated as a polygon.
// Positive values are clockwise on a y-down screen.
func (pl Polyline) Area() float64 {
	var a float64
	n := len(pl.Points)
	for i := range pl.Points {
		p, q := pl.Points[i], pl.Points[(i+1)%n]
		a += p.Cross(q)
	}
	return a / 2
}

// walk calls fn for every segment of p with its start point resolved.
// Close is reported as a line back to the subpath start.
func (p *Path) walk(fn func(from Point, el PathElement)) {
	var cur, start Point
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			fn(cur, e)
			cur, start = e.Point, e.Point
		case LineTo:
			fn(cur, e)
			cur = e.Point
		case QuadTo:
			fn(cur, e)
			cur = e.Point
		case CubicTo:
			fn(cur, e)
			cur = e.Point
		case Close:
			fn(cur, LineTo{Point: start})
			cur = start
		}
	}
}

// Area returns the signed area enclosed by the path, computed exactly for
// curves with Green's theorem. Positive values are clockwise on a y-down
// screen.
func (p *Path) Area() float64 {
	var area float64
	p.walk(func(from Point, el PathElement) {
		switch e := el.(type) {
		case LineTo:
			area += from.Cross(e.Point) / 2
		case QuadTo:
			p0, p1, p2 := from, e.Control, e.Point
			area += (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(p2.Y-p0.Y) - p2.X*(2*p1.Y+p0.Y)) / 6
		case CubicTo:
			p0, p1, p2, p3 := from, e.Control1, e.Control2, e.Point
			area += (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
				3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
				3*p2.X*(-p0.Y-p1.Y+2*p3.Y) -
				p3.X*(p0.Y+3*p1.Y+6*p2.Y)) / 20
		}
	})
	return area
}

// Flatten approximates the path with polylines whose distance from the
// curves is at most tolerance. Non-positive tolerances use
// DefaultTolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	var out []Polyline
	var cur *Polyline
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	emit := func(pt Point) {
		cur.Points = append(cur.Points, pt)
	}

	p.walk(func(from Point, el PathElement) {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = &Polyline{Points: []Point{e.Point}}
		case LineTo:
			if cur == nil {
				break
			}
			emit(e.Point)
		case QuadTo:
			if cur == nil {
				break
			}
			flattenQuad(QuadBez{from, e.Control, e.Point}, tolSq, emit)
		case CubicTo:
			if cur == nil {
				break
			}
			flattenCubic(CubicBez{from, e.Control1, e.Control2, e.Point}, tolSq, emit, 0)
		}
	})
	// Close arrives as a LineTo back to the start; drop that duplicate
	// point and mark the polyline closed instead.
	if cur != nil {
		out = append(out, *cur)
	}
	return markClosed(p, out)
}

func markClosed(p *Path, lines []Polyline) []Polyline {
	i := -1
	for _, el := range p.elements {
		switch el.(type) {
		case MoveTo:
			i++
		case Close:
			if i < 0 || i >= len(lines) {
				continue
			}
			pl := &lines[i]
			pl.Closed = true
			if n := len(pl.Points); n > 1 && pl.Points[n-1] == pl.Points[0] {
				pl.Points = pl.Points[:n-1]
			}
		}
	}
	return lines
}

const maxFlattenDepth = 16

func flattenQuad(q QuadBez, tolSq float64, emit func(Point)) {
	flattenQuadDepth(q, tolSq, emit, 0)
}

func flattenQuadDepth(q QuadBez, tolSq float64, emit func(Point), depth int) {
	if depth >= maxFlattenDepth || q.flatness() <= tolSq {
		emit(q.P2)
		return
	}
	a, b := q.Subdivide()
	flattenQuadDepth(a, tolSq, emit, depth+1)
	flattenQuadDepth(b, tolSq, emit, depth+1)
}

func flattenCubic(c CubicBez, tolSq float64, emit func(Point), depth int) {
	if depth >= maxFlattenDepth || c.flatness() <= 16*tolSq {
		emit(c.P3)
		return
	}
	a, b := c.Subdivide()
	flattenCubic(a, tolSq, emit, depth+1)
	flattenCubic(b, tolSq, emit, depth+1)
}

// Winding returns the winding number of pt. Every subpath counts as
// closed, as it does when filling.
func (p *Path) Winding(pt Point) int {
	return windingOf(p.Flatten(DefaultTolerance), pt)
}

func windingOf(lines []Polyline, pt Point) int {
	w := 0
	for _, pl := range lines {
		n := len(pl.Points)
		for i := 0; i < n; i++ {
			a, b := pl.Points[i], pl.Points[(i+1)%n]
			side := b.Sub(a).Cross(pt.Sub(a))
			switch {
			case a.Y <= pt.Y && b.Y > pt.Y && side > 0:
				w++
			case a.Y > pt.Y && b.Y <= pt.Y && side < 0:
				w--
			}
		}
	}
	return w
}

// Contains reports whether pt is inside the path under rule.
func (p *Path) Contains(pt Point, rule FillRule) bool {
	return rule.inside(p.Winding(pt))
}

// BoundingBox returns the tight bounds of the path, using curve extrema
// rather than control points. An empty path yields NullRect.
func (p *Path) BoundingBox() Rect {
	box := NullRect
	add := func(r Rect) { box = box.Union(r) }
	p.walk(func(from Point, el PathElement) {
		switch e := el.(type) {
		case MoveTo:
			add(RectFromPoints(e.Point, e.Point))
		case LineTo:
			add(RectFromPoints(e.Point, e.Point))
		case QuadTo:
			add(QuadBez{from, e.Control, e.Point}.BoundingBox())
		case CubicTo:
			add(CubicBez{from, e.Control1, e.Control2, e.Point}.BoundingBox())
		}
	})
	return box
}

// Length returns the arc length of the path, closing segments included.
// accuracy bounds the flattening error; non-positive values use 0.001.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 1e-3
	}
	var l float64
	for _, pl := range p.Flatten(accuracy) {
		l += pl.Length()
	}
	return l
}

// Reversed returns a path that traces every subpath backwards.
func (p *Path) Reversed() *Path {
	out := NewPath()
	for _, sp := range p.subpaths() {
		sp.reverseInto(out)
	}
	return out
}

type subpath struct {
	start  Point
	segs   []PathElement
	starts []Point
	closed bool
}

func (p *Path) subpaths() []subpath {
	var out []subpath
	var cur *subpath
	p.walk(func(from Point, el PathElement) {
		switch el.(type) {
		case MoveTo:
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &subpath{start: el.(MoveTo).Point}
		default:
			if cur == nil {
				return
			}
			cur.segs = append(cur.segs, el)
			cur.starts = append(cur.starts, from)
		}
	})
	if cur != nil {
		out = append(out, *cur)
	}

	// Mark closed subpaths; their final LineTo came from Close.
	i := -1
	for _, el := range p.elements {
		switch el.(type) {
		case MoveTo:
			i++
		case Close:
			if i >= 0 && i < len(out) {
				out[i].closed = true
			}
		}
	}
	return out
}

func (sp subpath) end() Point {
	if len(sp.segs) == 0 {
		return sp.start
	}
	switch e := sp.segs[len(sp.segs)-1].(type) {
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	}
	return sp.start
}

func (sp subpath) reverseInto(out *Path) {
	segs, starts := sp.segs, sp.starts
	if sp.closed && len(segs) > 0 {
		// Drop the implicit closing edge; Close re-creates it.
		segs, starts = segs[:len(segs)-1], starts[:len(starts)-1]
	}
	end := sp.start
	if len(segs) > 0 {
		end = subpath{start: sp.start, segs: segs}.end()
	}
	out.MoveTo(end)
	for i := len(segs) - 1; i >= 0; i-- {
		from := starts[i]
		switch e := segs[i].(type) {
		case LineTo:
			out.LineTo(from)
		case QuadTo:
			out.QuadTo(e.Control, from)
		case CubicTo:
			out.CubicTo(e.Control2, e.Control1, from)
		}
	}
	if sp.closed {
		out.Close()
	}
}

// Trimmed returns the part of the path between the fractions from and to
// of its total length, as straight segments. Fractions are clamped to
// [0, 1]; from >= to yields an empty path.
func (p *Path) Trimmed(from, to float64) *Path {
	from, to = clamp(from, 0, 1), clamp(to, 0, 1)
	out := NewPath()
	if from >= to {
		return out
	}
	lines := p.Flatten(DefaultTolerance / 10)
	var total float64
	for _, pl := range lines {
		total += pl.Length()
	}
	if total == 0 {
		return out
	}
	lo, hi := from*total, to*total

	var pos float64
	for _, pl := range lines {
		pts := pl.Points
		if pl.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		drawing := false
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := a.Distance(b)
			s0, s1 := pos, pos+seg
			pos = s1
			if s1 < lo || s0 > hi || seg == 0 {
				drawing = false
				continue
			}
			t0 := math.Max(0, (lo-s0)/seg)
			t1 := math.Min(1, (hi-s0)/seg)
			if !drawing {
				out.MoveTo(a.Lerp(b, t0))
				drawing = true
			}
			out.LineTo(a.Lerp(b, t1))
		}
	}
	return out
}
