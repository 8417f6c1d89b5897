package shapes

import "math"

// Heart is drawn with two cubics from a notch near the top to the bottom
// point and back. Its control points are fixed fractions of the frame.
type Heart struct{}

func (Heart) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	at := func(x, y float64) Point { return r.ProjectedPoint(Pt(x, y), false) }
	origin, bottom := at(0.5, 0.2), at(0.5, 1)
	p.MoveTo(origin)
	p.CubicTo(at(0.2, -0.35), at(-0.4, 0.45), bottom)
	p.CubicTo(at(1.4, 0.45), at(0.8, -0.35), origin)
	p.Close()
	return p
}

// Lens joins the top and bottom midpoints with two quadratic curves.
// ControlRatio pulls the controls from the side edges toward the center;
// 0.5 collapses the lens to a line.
type Lens struct {
	ControlRatio float64
}

func (s Lens) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	top, bottom := Pt(r.MidX(), r.MinY()), Pt(r.MidX(), r.MaxY())
	dx := s.ControlRatio * r.Width()
	p.MoveTo(top)
	p.QuadTo(Pt(r.MaxX()-dx, r.MidY()), bottom)
	p.QuadTo(Pt(r.MinX()+dx, r.MidY()), top)
	p.Close()
	return p
}

func (s Lens) AnimatableData() Scalar { return Scalar(s.ControlRatio) }

func (s Lens) WithAnimatableData(d Scalar) Shape {
	s.ControlRatio = float64(d)
	return s
}

// Crescent is bounded by two quadratic curves sharing the left corners.
type Crescent struct{}

func (Crescent) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	p.MoveTo(r.Min())
	p.QuadTo(r.Mid(), Pt(r.MinX(), r.MaxY()))
	p.QuadTo(Pt(r.MaxX(), r.MidY()), r.Min())
	p.Close()
	return p
}

// Teardrop is a circle whose upper half is drawn up into a point at the
// top of the frame. Variation, clamped to [0, 1], sets how far down the
// sides the point's curves reach.
type Teardrop struct {
	Variation float64
}

func (s Teardrop) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	v := clamp(s.Variation, 0, 1)
	radius := r.Breadth() / 2
	c := r.Mid()
	origin := Pt(r.MidX(), r.MinY())
	cy := r.MinY() + (r.MidY()-r.MinY())*v

	p.MoveTo(origin)
	p.QuadTo(Pt(c.X+radius, cy), Pt(c.X+radius, c.Y))
	p.Arc(c, radius, 0, math.Pi, true)
	p.QuadTo(Pt(c.X-radius, cy), origin)
	p.Close()
	return p
}

func (s Teardrop) AnimatableData() Scalar { return Scalar(s.Variation) }

func (s Teardrop) WithAnimatableData(d Scalar) Shape {
	s.Variation = float64(d)
	return s
}

// DoubleTeardrop has square top-left and bottom-right corners and round
// top-right and bottom-left quadrants.
type DoubleTeardrop struct{}

func (DoubleTeardrop) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	c := r.Mid()
	radius := r.Height() / 2
	p.MoveTo(r.Min())
	p.LineTo(Pt(r.MidX(), r.MinY()))
	p.Arc(c, radius, -math.Pi/2, 0, true)
	p.LineTo(r.Max())
	p.LineTo(Pt(r.MidX(), r.MaxY()))
	p.Arc(c, radius, math.Pi/2, math.Pi, true)
	p.Close()
	return p
}

// Salinon is Archimedes' salt cellar: a semicircle with two smaller
// semicircles cut from its base and a circle of InnerDiameterRatio times
// the breadth around the center. With Centered set the figure is scaled
// to fill the largest centered square.
type Salinon struct {
	InnerDiameterRatio float64
	Centered           bool
}

// NewSalinon returns a salinon with an inner circle one fifth of the
// breadth.
func NewSalinon() Salinon { return Salinon{InnerDiameterRatio: 0.2} }

func (s Salinon) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	dim := r.Breadth()
	c := r.Mid()
	inner := s.InnerDiameterRatio
	outer := (1 - inner) / 2
	small := dim * outer / 2

	p.Arc(c, dim/2, math.Pi, 0, true)
	b, _ := p.CurrentPoint()
	p.Arc(Pt(b.X-small, c.Y), small, 0, math.Pi, false)
	p.Arc(c, dim*inner/2, 0, math.Pi/2, true)
	p.Arc(c, dim*inner/2, math.Pi/2, math.Pi, true)
	d, _ := p.CurrentPoint()
	p.Arc(Pt(d.X-small, c.Y), small, 0, math.Pi, false)
	p.Close()

	if s.Centered {
		return RecenterAndScale(p, SquareRect(c, dim), FitUniform)
	}
	return p
}

func (s Salinon) AnimatableData() Scalar { return Scalar(s.InnerDiameterRatio) }

func (s Salinon) WithAnimatableData(d Scalar) Shape {
	s.InnerDiameterRatio = float64(d)
	return s
}

// Arbelos is the shoemaker's knife: a semicircle with two semicircles on
// the same side removed, meeting at XPosition along the diameter.
type Arbelos struct {
	XPosition float64
}

// NewArbelos returns an arbelos split at 0.65 of the diameter.
func NewArbelos() Arbelos { return Arbelos{XPosition: 0.65} }

func (s Arbelos) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	x := clamp(s.XPosition, 0, 1)
	dim := r.Breadth()
	c := r.Mid()

	p.Arc(c, dim/2, math.Pi, 0, true)
	split := Pt(c.X-dim/2+x*dim, c.Y)
	r1 := (1 - x) * dim / 2
	p.Arc(split.Offset(r1, 0), r1, 0, math.Pi, false)
	r2 := x * dim / 2
	p.Arc(split.Offset(-r2, 0), r2, 0, math.Pi, false)
	p.Close()
	return p
}

func (s Arbelos) AnimatableData() Scalar { return Scalar(s.XPosition) }

func (s Arbelos) WithAnimatableData(d Scalar) Shape {
	s.XPosition = float64(d)
	return s
}

// Lune is the part of the inscribed circle left after subtracting a
// second circle SizeFactor times larger, whose center is displaced by
// CenterDistance in units of the breadth.
type Lune struct {
	SizeFactor     float64
	CenterDistance Point
}

// NewLune returns a lune cut by a circle one and a half times larger,
// shifted left by half the breadth.
func NewLune() Lune {
	return Lune{SizeFactor: 1.5, CenterDistance: Pt(-0.5, 0)}
}

func (s Lune) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	size := r.Breadth()
	main := Circle{}.Path(SquareRect(r.Mid(), size))
	cutter := SquareRect(r.Mid(), size*s.SizeFactor).
		Offset(s.CenterDistance.X*size, s.CenterDistance.Y*size)
	return Subtract(main, Circle{}.Path(cutter))
}

// CircleSector is a pie slice of the inscribed circle between Start and
// End, in radians. Clockwise selects the on-screen sweep direction.
type CircleSector struct {
	Start, End float64
	Clockwise  bool
}

func (s CircleSector) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	c := r.Mid()
	p.MoveTo(c)
	p.Arc(c, r.Breadth()/2, s.Start, s.End, s.Clockwise)
	p.Close()
	return p
}

func (s CircleSector) AnimatableData() Pair[Scalar, Scalar] {
	return MakePair(Scalar(s.Start), Scalar(s.End))
}

func (s CircleSector) WithAnimatableData(d Pair[Scalar, Scalar]) Shape {
	s.Start, s.End = float64(d.First), float64(d.Second)
	return s
}

// Arrowhead is a curved arrow tip. Its points are unit coordinates in the
// frame; the barbs sit at the bottom corners.
type Arrowhead struct {
	Tip          Point
	Mid          Point
	ControlRight Point
	ControlLeft  Point
}

// NewArrowhead returns an arrowhead pointing up.
func NewArrowhead() Arrowhead {
	return Arrowhead{
		Tip:          Pt(0.5, 0),
		Mid:          Pt(0.5, 0.75),
		ControlRight: Pt(0.75, 0.5),
		ControlLeft:  Pt(0.25, 0.5),
	}
}

func (s Arrowhead) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	at := func(u Point) Point { return r.ProjectedPoint(u, false) }
	tip := at(s.Tip)
	right, left := r.Max(), Pt(r.MinX(), r.MaxY())
	p.MoveTo(tip)
	p.QuadTo(at(s.ControlRight), right)
	p.QuadTo(right, at(s.Mid))
	p.QuadTo(left, left)
	p.QuadTo(at(s.ControlLeft), tip)
	p.Close()
	return p
}

// RoundedCornerRectangle rounds only the listed corners.
type RoundedCornerRectangle struct {
	CornerRadius float64
	Corners      []Corner
}

func (s RoundedCornerRectangle) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	radius := math.Min(math.Abs(s.CornerRadius), math.Min(r.Width(), r.Height())/2)
	rounded := func(c Corner) bool {
		for _, x := range s.Corners {
			if x == c {
				return true
			}
		}
		return false
	}
	corner := func(c Corner, pt, center Point, start float64) {
		if rounded(c) && radius > 0 {
			p.Arc(center, radius, start, start+math.Pi/2, true)
			return
		}
		p.LineTo(pt)
	}

	minX, minY, maxX, maxY := r.MinX(), r.MinY(), r.MaxX(), r.MaxY()
	p.MoveTo(Pt(minX, minY+radius))
	corner(CornerTopLeft, r.Min(), Pt(minX+radius, minY+radius), math.Pi)
	p.LineTo(Pt(maxX-radius, minY))
	corner(CornerTopRight, Pt(maxX, minY), Pt(maxX-radius, minY+radius), -math.Pi/2)
	p.LineTo(Pt(maxX, maxY-radius))
	corner(CornerBottomRight, r.Max(), Pt(maxX-radius, maxY-radius), 0)
	p.LineTo(Pt(minX+radius, maxY))
	corner(CornerBottomLeft, Pt(minX, maxY), Pt(minX+radius, maxY-radius), math.Pi/2)
	p.Close()
	return p
}

func (RoundedCornerRectangle) SizeThatFits(proposal Size) Size { return FitProposal(proposal) }

// InvertedCornerRectangle scoops a quarter circle of CornerRadius out of
// every corner.
type InvertedCornerRectangle struct {
	CornerRadius float64
}

func (s InvertedCornerRectangle) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	radius := math.Min(math.Abs(s.CornerRadius), math.Min(r.Width(), r.Height())/2)
	minX, minY, maxX, maxY := r.MinX(), r.MinY(), r.MaxX(), r.MaxY()

	p.MoveTo(Pt(minX, minY+radius))
	p.Arc(r.Min(), radius, math.Pi/2, 0, false)
	p.LineTo(Pt(maxX-radius, minY))
	p.Arc(Pt(maxX, minY), radius, math.Pi, math.Pi/2, false)
	p.LineTo(Pt(maxX, maxY-radius))
	p.Arc(r.Max(), radius, -math.Pi/2, -math.Pi, false)
	p.LineTo(Pt(minX+radius, maxY))
	p.Arc(Pt(minX, maxY), radius, 0, -math.Pi/2, false)
	p.Close()
	return p
}

// QuadCorner draws only the four corners of the frame as open L-shaped
// polylines with legs CornerRadius long. It is meant to be stroked.
type QuadCorner struct {
	CornerRadius float64
}

func (s QuadCorner) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	d := s.CornerRadius
	minX, minY, maxX, maxY := r.MinX(), r.MinY(), r.MaxX(), r.MaxY()
	p.AddLines([]Point{Pt(minX, minY+d), r.Min(), Pt(minX+d, minY)})
	p.AddLines([]Point{Pt(maxX-d, minY), Pt(maxX, minY), Pt(maxX, minY+d)})
	p.AddLines([]Point{Pt(maxX, maxY-d), r.Max(), Pt(maxX-d, maxY)})
	p.AddLines([]Point{Pt(minX+d, maxY), Pt(minX, maxY), Pt(minX, maxY-d)})
	return p
}

// Line is an open segment between two unit points of the frame. With
// BoundToFrame the unit points are clamped to [0, 1] first.
type Line struct {
	Start, End   Point
	BoundToFrame bool
}

// HorizontalLine crosses the frame at mid height.
func HorizontalLine() Line { return Line{Start: UnitLeft, End: UnitRight, BoundToFrame: true} }

// VerticalLine crosses the frame at mid width.
func VerticalLine() Line { return Line{Start: UnitTop, End: UnitBottom, BoundToFrame: true} }

func (s Line) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	p.MoveTo(r.ProjectedPoint(s.Start, s.BoundToFrame))
	p.LineTo(r.ProjectedPoint(s.End, s.BoundToFrame))
	return p
}

// OgeeCurve is an open molding profile rising from the bottom-left to the
// top-right corner.
type OgeeCurve struct {
	ControlX float64
	Type     OgeeType
}

func (s OgeeCurve) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	p.MoveTo(Pt(r.MinX(), r.MaxY()))
	p.AddOgeeCurve(Pt(r.MaxX(), r.MinY()), s.ControlX, s.Type)
	return p
}

func (s OgeeCurve) AnimatableData() Scalar { return Scalar(s.ControlX) }

func (s OgeeCurve) WithAnimatableData(d Scalar) Shape {
	s.ControlX = float64(d)
	return s
}

// SCurve is an open pair of quadratic curves across the frame, from the
// bottom-left to the top-right corner, or top-left to bottom-right when
// Reverse is set. The controls are unit points of the frame.
type SCurve struct {
	Control1, Control2 Point
	Reverse            bool
}

func (s SCurve) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	from, to := Pt(r.MinX(), r.MaxY()), Pt(r.MaxX(), r.MinY())
	if s.Reverse {
		from, to = r.Min(), r.Max()
	}
	p.MoveTo(from)
	p.AddSCurve(to, r.ProjectedPoint(s.Control1, false), r.ProjectedPoint(s.Control2, false))
	return p
}

// Triquetra interlaces three lenses rotated by 120° about the center,
// fitted to the largest centered square. It is meant to be stroked.
type Triquetra struct{}

func (Triquetra) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	dim := r.Breadth()
	c := r.Mid()
	leaf := Lens{}.Path(SquareRect(c.Offset(0, -0.16*dim), 0.75*dim))

	p := NewPath()
	for i := range 3 {
		p.AddPath(leaf.RotateAbout(2*math.Pi*float64(i)/3, c))
	}
	return RecenterAndScale(p, SquareRect(c, dim), FitUniform)
}
