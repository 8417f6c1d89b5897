package shapes

import "math"

// polygonPath closes vertices into a single subpath.
func polygonPath(vertices []Point) *Path {
	p := NewPath()
	p.AddPolygon(vertices)
	return p
}

// Bullet is a rectangle whose right end tapers to a point at the middle
// of the right edge. Taper is the horizontal length of the point, capped
// at half the frame width.
type Bullet struct {
	Taper float64
}

func (s Bullet) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	v := math.Min(math.Abs(s.Taper), r.Width()/2)
	return []Point{
		r.Min(),
		Pt(r.MaxX()-v, r.MinY()),
		Pt(r.MaxX(), r.MidY()),
		Pt(r.MaxX()-v, r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
	}
}

func (s Bullet) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s Bullet) AnimatableData() Scalar { return Scalar(s.Taper) }

func (s Bullet) WithAnimatableData(d Scalar) Shape {
	s.Taper = float64(d)
	return s
}

// TaperedRectangle is a hexagon: a rectangle with both ends tapered to
// points at mid height.
type TaperedRectangle struct {
	Taper float64
}

func (s TaperedRectangle) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	v := math.Min(math.Abs(s.Taper), r.Width()/2)
	return []Point{
		Pt(r.MinX(), r.MidY()),
		Pt(r.MinX()+v, r.MinY()),
		Pt(r.MaxX()-v, r.MinY()),
		Pt(r.MaxX(), r.MidY()),
		Pt(r.MaxX()-v, r.MaxY()),
		Pt(r.MinX()+v, r.MaxY()),
	}
}

func (s TaperedRectangle) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s TaperedRectangle) AnimatableData() Scalar { return Scalar(s.Taper) }

func (s TaperedRectangle) WithAnimatableData(d Scalar) Shape {
	s.Taper = float64(d)
	return s
}

// Kite has its top and bottom points on the vertical midline and its
// side points on the frame edges, PointRatio of the height from the top.
type Kite struct {
	PointRatio float64
}

func (s Kite) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	y := r.MinY() + r.Height()*s.PointRatio
	return []Point{
		Pt(r.MidX(), r.MinY()),
		Pt(r.MaxX(), y),
		Pt(r.MidX(), r.MaxY()),
		Pt(r.MinX(), y),
	}
}

func (s Kite) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s Kite) AnimatableData() Scalar { return Scalar(s.PointRatio) }

func (s Kite) WithAnimatableData(d Scalar) Shape {
	s.PointRatio = float64(d)
	return s
}

// Diamond is a kite with its side points at mid height.
type Diamond struct{}

func (Diamond) Vertices(r Rect) []Point { return Kite{PointRatio: 0.5}.Vertices(r) }

func (d Diamond) Path(r Rect) *Path { return polygonPath(d.Vertices(r)) }

// RightKite is a kite whose side points lie on the inscribed circle, so
// the angles at those points are right angles. PointRatio in [0, 1] moves
// them from the top of the circle to the bottom.
type RightKite struct {
	PointRatio float64
}

func (s RightKite) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	c := r.Mid()
	radius := r.Breadth() / 2
	theta := math.Pi * s.PointRatio
	sin, cos := math.Sincos(theta)
	pts := []Point{
		Pt(r.MaxX(), r.MidY()),
		Pt(c.X+radius*cos, c.Y+radius*sin),
		Pt(r.MinX(), r.MidY()),
		Pt(c.X+radius*cos, c.Y-radius*sin),
	}
	m := RotateAbout(-math.Pi/2, c)
	for i, pt := range pts {
		pts[i] = m.TransformPoint(pt)
	}
	return pts
}

func (s RightKite) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s RightKite) AnimatableData() Scalar { return Scalar(s.PointRatio) }

func (s RightKite) WithAnimatableData(d Scalar) Shape {
	s.PointRatio = float64(d)
	return s
}

// Trapezoid stands on the full bottom edge. Its top edge spans the
// fractions Pct1 to Pct2 of the frame width; the order of the two does
// not matter.
type Trapezoid struct {
	Pct1, Pct2 float64
}

func (s Trapezoid) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	lo, hi := math.Min(s.Pct1, s.Pct2), math.Max(s.Pct1, s.Pct2)
	return []Point{
		Pt(r.MinX(), r.MaxY()),
		Pt(r.MinX()+lo*r.Width(), r.MinY()),
		Pt(r.MinX()+hi*r.Width(), r.MinY()),
		r.Max(),
	}
}

func (s Trapezoid) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s Trapezoid) AnimatableData() Pair[Scalar, Scalar] {
	return MakePair(Scalar(s.Pct1), Scalar(s.Pct2))
}

func (s Trapezoid) WithAnimatableData(d Pair[Scalar, Scalar]) Shape {
	s.Pct1, s.Pct2 = float64(d.First), float64(d.Second)
	return s
}

// Parallelogram slants its top edge right by Pct of the frame width.
type Parallelogram struct {
	Pct float64
}

func (s Parallelogram) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	dx := math.Abs(s.Pct) * r.Width()
	return []Point{
		Pt(r.MinX(), r.MaxY()),
		Pt(r.MinX()+dx, r.MinY()),
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX()-dx, r.MaxY()),
	}
}

func (s Parallelogram) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }

func (s Parallelogram) AnimatableData() Scalar { return Scalar(s.Pct) }

func (s Parallelogram) WithAnimatableData(d Scalar) Shape {
	s.Pct = float64(d)
	return s
}

// IsoscelesTriangle points up from the bottom edge.
type IsoscelesTriangle struct{}

func (IsoscelesTriangle) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	return []Point{Pt(r.MidX(), r.MinY()), r.Max(), Pt(r.MinX(), r.MaxY())}
}

func (t IsoscelesTriangle) Path(r Rect) *Path { return polygonPath(t.Vertices(r)) }

// RightTriangle has its right angle at the bottom-right corner.
type RightTriangle struct{}

func (RightTriangle) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	return []Point{Pt(r.MaxX(), r.MinY()), r.Max(), Pt(r.MinX(), r.MaxY())}
}

func (t RightTriangle) Path(r Rect) *Path { return polygonPath(t.Vertices(r)) }

// Corner names a corner of a rectangle.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// AllCorners lists the four corners clockwise from the top left.
var AllCorners = []Corner{CornerTopLeft, CornerTopRight, CornerBottomRight, CornerBottomLeft}

// CutCornerRectangle chamfers each listed corner by its length along both
// adjoining edges. Corners missing from the map stay square.
type CutCornerRectangle struct {
	Corners map[Corner]float64
}

func (s CutCornerRectangle) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	tl := math.Abs(s.Corners[CornerTopLeft])
	tr := math.Abs(s.Corners[CornerTopRight])
	bl := math.Abs(s.Corners[CornerBottomLeft])
	br := math.Abs(s.Corners[CornerBottomRight])
	return []Point{
		Pt(r.MinX(), r.MinY()+tl),
		Pt(r.MinX()+tl, r.MinY()),
		Pt(r.MaxX()-tr, r.MinY()),
		Pt(r.MaxX(), r.MinY()+tr),
		Pt(r.MaxX(), r.MaxY()-br),
		Pt(r.MaxX()-br, r.MaxY()),
		Pt(r.MinX()+bl, r.MaxY()),
		Pt(r.MinX(), r.MaxY()-bl),
	}
}

func (s CutCornerRectangle) Path(r Rect) *Path { return polygonPath(s.Vertices(r)) }
