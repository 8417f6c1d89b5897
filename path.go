package shapes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PathElement is a single drawing command of a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath with a straight segment to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of drawing commands. Builders mutate the
// receiver; transforms and queries leave it untouched and return new
// values.
type Path struct {
	elements   []PathElement
	start      Point
	current    Point
	hasCurrent bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start, p.current, p.hasCurrent = pt, pt, true
}

// LineTo draws a line to pt. Without a current point it moves there.
func (p *Path) LineTo(pt Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
		return
	}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic curve to pt.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.ensureCurrent(ctrl)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic curve to pt.
func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) {
	p.ensureCurrent(ctrl1)
	p.elements = append(p.elements, CubicTo{Control1: ctrl1, Control2: ctrl2, Point: pt})
	p.current = pt
}

// Close closes the current subpath. Closing an empty path is a no-op.
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	if _, closed := p.last().(Close); closed {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

func (p *Path) ensureCurrent(pt Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
	}
}

func (p *Path) last() PathElement {
	if len(p.elements) == 0 {
		return nil
	}
	return p.elements[len(p.elements)-1]
}

// AddLines moves to the first point and draws lines through the rest.
func (p *Path) AddLines(points []Point) {
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
}

// AddPolygon adds a closed subpath through points.
func (p *Path) AddPolygon(points []Point) {
	if len(points) == 0 {
		return
	}
	p.AddLines(points)
	p.Close()
}

// AddRect adds r as a closed subpath, clockwise on screen from the
// top-left corner.
func (p *Path) AddRect(r Rect) {
	if r.IsNull() {
		return
	}
	p.AddPolygon([]Point{
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MaxY()},
	})
}

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// AddEllipse adds the ellipse inscribed in r, starting at the right-hand
// extreme and running clockwise on screen.
func (p *Path) AddEllipse(r Rect) {
	if r.IsNull() {
		return
	}
	c := r.Mid()
	rx, ry := r.Width()/2, r.Height()/2
	ox, oy := rx*kappa, ry*kappa

	p.MoveTo(Pt(c.X+rx, c.Y))
	p.CubicTo(Pt(c.X+rx, c.Y+oy), Pt(c.X+ox, c.Y+ry), Pt(c.X, c.Y+ry))
	p.CubicTo(Pt(c.X-ox, c.Y+ry), Pt(c.X-rx, c.Y+oy), Pt(c.X-rx, c.Y))
	p.CubicTo(Pt(c.X-rx, c.Y-oy), Pt(c.X-ox, c.Y-ry), Pt(c.X, c.Y-ry))
	p.CubicTo(Pt(c.X+ox, c.Y-ry), Pt(c.X+rx, c.Y-oy), Pt(c.X+rx, c.Y))
	p.Close()
}

// AddCircle adds a circle of radius r around center.
func (p *Path) AddCircle(center Point, r float64) {
	p.AddEllipse(SquareRect(center, 2*math.Abs(r)))
}

// AddPath appends every element of other.
func (p *Path) AddPath(other *Path) {
	if other == nil {
		return
	}
	for _, el := range other.elements {
		p.append(el)
	}
}

// append adds el and keeps the subpath bookkeeping in sync.
func (p *Path) append(el PathElement) {
	switch e := el.(type) {
	case MoveTo:
		p.MoveTo(e.Point)
	case LineTo:
		p.LineTo(e.Point)
	case QuadTo:
		p.QuadTo(e.Control, e.Point)
	case CubicTo:
		p.CubicTo(e.Control1, e.Control2, e.Point)
	case Close:
		p.Close()
	}
}

// Arc adds a circular arc from startAngle to endAngle. With clockwise set
// the angle increases, which is clockwise on a y-down screen. The arc is
// connected to the current point with a straight line.
func (p *Path) Arc(center Point, radius, startAngle, endAngle float64, clockwise bool) {
	sweep := endAngle - startAngle
	switch {
	case clockwise && sweep < 0:
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	case !clockwise && sweep > 0:
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}
	p.RelativeArc(center, radius, startAngle, sweep)
}

// RelativeArc adds an arc that starts at startAngle and sweeps by delta
// radians. Positive deltas run clockwise on screen. Sweeps beyond a full
// turn draw one full circle; non-finite arguments add nothing.
func (p *Path) RelativeArc(center Point, radius, startAngle, delta float64) {
	if !isFinite(radius) || !isFinite(startAngle) || !isFinite(delta) || !center.IsFinite() {
		return
	}
	radius = math.Abs(radius)
	from := center.OffsetPolar(radius, startAngle)
	p.connect(from)
	if radius == 0 || delta == 0 {
		return
	}
	delta = math.Copysign(math.Min(math.Abs(delta), 2*math.Pi), delta)

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	for i := 0; i < n; i++ {
		a0 := startAngle + float64(i)*step
		p.arcSegment(center, radius, a0, a0+step)
	}
}

// connect moves to pt on an empty path and otherwise draws a line to it
// unless the current point is already there.
func (p *Path) connect(pt Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
		return
	}
	if p.current.Distance(pt) > 1e-9 {
		p.LineTo(pt)
	}
}

// arcSegment approximates an arc of at most 90° with one cubic.
func (p *Path) arcSegment(c Point, r, a0, a1 float64) {
	da := a1 - a0
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)
	p0 := Pt(c.X+r*cos0, c.Y+r*sin0)
	p1 := Pt(c.X+r*cos1, c.Y+r*sin1)

	p.CubicTo(
		Pt(p0.X-alpha*r*sin0, p0.Y+alpha*r*cos0),
		Pt(p1.X+alpha*r*sin1, p1.Y-alpha*r*cos1),
		p1,
	)
}

// ArcTo draws a line from the current point toward tangent1 and rounds
// the corner at tangent1 with an arc of radius that is tangent to both
// the incoming line and the line from tangent1 to tangent2.
func (p *Path) ArcTo(tangent1, tangent2 Point, radius float64) {
	if !p.hasCurrent {
		p.MoveTo(tangent1)
		return
	}
	radius = math.Abs(radius)
	u := p.current.Sub(tangent1).Normalize()
	v := tangent2.Sub(tangent1).Normalize()
	if radius == 0 || math.Abs(u.Cross(v)) < 1e-12 {
		p.LineTo(tangent1)
		return
	}

	half := math.Acos(clamp(u.Dot(v), -1, 1)) / 2
	d := radius / math.Tan(half)
	a := tangent1.Add(u.Mul(d))
	b := tangent1.Add(v.Mul(d))
	center := tangent1.Add(u.Add(v).Normalize().Mul(radius / math.Sin(half)))

	start := a.Sub(center).Angle()
	sweep := normalizeAngle(b.Sub(center).Angle() - start)
	p.connect(a)
	p.RelativeArc(center, radius, start, sweep)
}

// normalizeAngle maps a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

// OgeeType selects the ogee family drawn by AddOgeeCurve.
type OgeeType int

const (
	// CymaRecta starts and ends horizontally.
	CymaRecta OgeeType = iota
	// CymaReversa starts and ends vertically.
	CymaReversa
)

// AddSCurve draws two quadratic curves, through the midpoint between the
// current point and dest.
func (p *Path) AddSCurve(dest, control1, control2 Point) {
	from, _ := p.CurrentPoint()
	p.ensureCurrent(from)
	p.QuadTo(control1, from.Midpoint(dest))
	p.QuadTo(control2, dest)
}

// AddOgeeCurve draws an S-shaped molding profile to dest. controlX is the
// position of the control points between the endpoints and the midpoint,
// clamped to [0, 1].
func (p *Path) AddOgeeCurve(dest Point, controlX float64, kind OgeeType) {
	from, _ := p.CurrentPoint()
	p.ensureCurrent(from)
	mid := from.Midpoint(dest)

	cx := clamp(controlX, 0, 1)
	if kind == CymaReversa {
		cx = 1 - cx
	}
	first := Pt(from.X+cx*(mid.X-from.X), from.Y)
	second := Pt(dest.X-cx*(dest.X-mid.X), dest.Y)
	if kind == CymaReversa {
		first.Y = mid.Y
		second.Y = mid.Y
	}
	p.QuadTo(first, mid)
	p.QuadTo(second, dest)
}

// Elements returns the drawing commands. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of drawing commands.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no drawing commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the end of the last command and whether the path
// has one.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return NewPath()
	}
	c := *p
	c.elements = append(make([]PathElement, 0, len(p.elements)), p.elements...)
	return &c
}

// Equal reports whether both paths hold identical commands.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() == other.IsEmpty()
	}
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i := range p.elements {
		if p.elements[i] != other.elements[i] {
			return false
		}
	}
	return true
}

// String lists the commands in SVG path notation.
func (p *Path) String() string {
	var sb strings.Builder
	num := func(pts ...Point) {
		for _, pt := range pts {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.X, 'g', 6, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'g', 6, 64))
		}
	}
	for i, el := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case MoveTo:
			sb.WriteByte('M')
			num(e.Point)
		case LineTo:
			sb.WriteByte('L')
			num(e.Point)
		case QuadTo:
			sb.WriteByte('Q')
			num(e.Control, e.Point)
		case CubicTo:
			sb.WriteByte('C')
			num(e.Control1, e.Control2, e.Point)
		case Close:
			sb.WriteByte('Z')
		default:
			fmt.Fprintf(&sb, "?%T", e)
		}
	}
	return sb.String()
}

// Transform returns a copy of p with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			out.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			out.LineTo(m.TransformPoint(e.Point))
		case QuadTo:
			out.QuadTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case CubicTo:
			out.CubicTo(m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		case Close:
			out.Close()
		}
	}
	return out
}

// Translate returns a copy of p moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	return p.Transform(Translate(dx, dy))
}

// ScaleAbout returns a copy of p scaled about anchor.
func (p *Path) ScaleAbout(sx, sy float64, anchor Point) *Path {
	return p.Transform(ScaleAbout(sx, sy, anchor))
}

// RotateAbout returns a copy of p rotated about anchor.
func (p *Path) RotateAbout(angle float64, anchor Point) *Path {
	return p.Transform(RotateAbout(angle, anchor))
}
