package shapes

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
)

// RegularPolygonVertices returns sides points equally spaced on the
// circle inscribed in r. Vertex 0 sits at the top of the circle when
// offset is zero and the indices advance clockwise on screen. Negative
// counts use their absolute value.
func RegularPolygonVertices(sides int, r Rect, offset float64) []Point {
	n := absInt(sides)
	if n == 0 || r.IsNull() {
		return nil
	}
	c := r.Mid()
	radius := r.Breadth() / 2
	pts := make([]Point, n)
	for i := range pts {
		theta := 2*math.Pi*float64(i)/float64(n) + offset - math.Pi/2
		pts[i] = c.OffsetPolar(radius, theta)
	}
	return pts
}

// IsotoxalVertices returns 2·sidePairs vertices alternating between the
// circle inscribed in r and a concentric circle scaled by innerRatio,
// clamped to [0, 1].
func IsotoxalVertices(sidePairs int, innerRatio float64, r Rect) []Point {
	pts := RegularPolygonVertices(2*absInt(sidePairs), r, 0)
	c := r.Mid()
	k := clamp(innerRatio, 0, 1)
	if math.IsNaN(innerRatio) {
		k = 1
	}
	for i := 1; i < len(pts); i += 2 {
		pts[i] = c.Add(pts[i].Sub(c).Mul(k))
	}
	return pts
}

// StarPolygonPath connects every density-th of points regularly spaced
// vertices. When the walk returns to a vertex it already visited before
// all vertices are connected, the loop is closed and a new one starts at
// the next unvisited vertex, so compound stars draw as several closed
// subpaths.
func StarPolygonPath(points, density int, r Rect) *Path {
	path := NewPath()
	n, d := absInt(points), absInt(density)
	vertices := RegularPolygonVertices(n, r, 0)
	if len(vertices) == 0 {
		return path
	}

	visited := make([]bool, n)
	remaining := n
	i := 0
	path.MoveTo(vertices[0])
	for remaining > 0 {
		if visited[i] {
			path.Close()
			for visited[i] {
				i = (i + 1) % n
			}
			path.MoveTo(vertices[i])
			continue
		}
		visited[i] = true
		remaining--
		i = (i + d) % n
		path.LineTo(vertices[i])
	}
	path.Close()
	return path
}

// Rectangle fills its frame.
type Rectangle struct{}

// Path returns the frame as a clockwise rectangle.
func (Rectangle) Path(r Rect) *Path {
	p := NewPath()
	p.AddRect(r)
	return p
}

// Vertices returns the corners clockwise from the top left.
func (Rectangle) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	return []Point{r.Min(), Pt(r.MaxX(), r.MinY()), r.Max(), Pt(r.MinX(), r.MaxY())}
}

// SizeThatFits accepts any proposal.
func (Rectangle) SizeThatFits(proposal Size) Size { return FitProposal(proposal) }

// Square is the largest square centered in its frame.
type Square struct{}

// Path returns the centered square.
func (Square) Path(r Rect) *Path {
	return Rectangle{}.Path(centeredSquare(r))
}

// Vertices returns the square's corners clockwise from the top left.
func (Square) Vertices(r Rect) []Point {
	return Rectangle{}.Vertices(centeredSquare(r))
}

// SizeThatFits shrinks the proposal to a square.
func (Square) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// Circle is the largest circle centered in its frame.
type Circle struct{}

// Path returns the inscribed circle, starting at the east.
func (Circle) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	p.AddEllipse(centeredSquare(r))
	return p
}

// SizeThatFits shrinks the proposal to a square.
func (Circle) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

func centeredSquare(r Rect) Rect {
	if r.IsNull() {
		return NullRect
	}
	return SquareRect(r.Mid(), r.Breadth())
}

// RegularPolygon is a convex polygon with equal sides. Offset rotates the
// vertices clockwise, in radians.
type RegularPolygon struct {
	Sides  int
	Offset float64
}

// Vertices returns Sides points on the inscribed circle, the first at
// the north rotated by Offset.
func (s RegularPolygon) Vertices(r Rect) []Point {
	return RegularPolygonVertices(s.Sides, r, s.Offset)
}

// Path closes the vertices into one subpath.
func (s RegularPolygon) Path(r Rect) *Path {
	p := NewPath()
	p.AddPolygon(s.Vertices(r))
	return p
}

// SizeThatFits shrinks the proposal to a square.
func (RegularPolygon) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// AnimatableData returns the rotation offset.
func (s RegularPolygon) AnimatableData() Scalar { return Scalar(s.Offset) }

// WithAnimatableData returns a copy rotated by d.
func (s RegularPolygon) WithAnimatableData(d Scalar) Shape {
	s.Offset = float64(d)
	return s
}

// StarPolygon connects every Density-th of Points regularly spaced
// vertices. Densities of at least Points/2 repeat smaller stars.
type StarPolygon struct {
	Points  int
	Density int
}

// Vertices returns the Points equally spaced vertices the star connects.
func (s StarPolygon) Vertices(r Rect) []Point {
	return RegularPolygonVertices(s.Points, r, 0)
}

// Path draws one subpath per repeated star; see StarPolygonPath.
func (s StarPolygon) Path(r Rect) *Path {
	return StarPolygonPath(s.Points, s.Density, r)
}

// AnimatableData returns the point count and density.
func (s StarPolygon) AnimatableData() Pair[Scalar, Scalar] {
	return MakePair(Scalar(s.Points), Scalar(s.Density))
}

// WithAnimatableData returns a copy with d truncated to whole counts.
func (s StarPolygon) WithAnimatableData(d Pair[Scalar, Scalar]) Shape {
	s.Points = int(d.First)
	s.Density = int(d.Second)
	return s
}

// IsotoxalPolygon alternates SidePairs outer vertices with as many inner
// ones at InnerRadius times the outer radius.
type IsotoxalPolygon struct {
	SidePairs   int
	InnerRadius float64
}

// Vertices alternates outer and inner vertices, starting at the north.
func (s IsotoxalPolygon) Vertices(r Rect) []Point {
	return IsotoxalVertices(s.SidePairs, s.InnerRadius, r)
}

// Path closes the vertices into one subpath.
func (s IsotoxalPolygon) Path(r Rect) *Path {
	p := NewPath()
	p.AddPolygon(s.Vertices(r))
	return p
}

// AnimatableData returns the inner radius ratio.
func (s IsotoxalPolygon) AnimatableData() Scalar { return Scalar(s.InnerRadius) }

// WithAnimatableData returns a copy with inner radius ratio d.
func (s IsotoxalPolygon) WithAnimatableData(d Scalar) Shape {
	s.InnerRadius = float64(d)
	return s
}

// SimplePolygon places one vertex per ratio on the inscribed circle, at
// angle 2π·ratio measured clockwise from the east. Ratios are sorted, so
// the outline never crosses itself.
type SimplePolygon struct {
	Ratios []float64
}

// NewSimplePolygon returns a polygon over a sorted copy of ratios.
func NewSimplePolygon(ratios ...float64) SimplePolygon {
	rs := slices.Clone(ratios)
	slices.Sort(rs)
	return SimplePolygon{Ratios: rs}
}

// RandomSimplePolygon draws sides ratios from rng.
func RandomSimplePolygon(sides int, rng *rand.Rand) SimplePolygon {
	rs := make([]float64, absInt(sides))
	for i := range rs {
		rs[i] = rng.Float64()
	}
	return NewSimplePolygon(rs...)
}

// Vertices returns one point per sorted ratio.
func (s SimplePolygon) Vertices(r Rect) []Point {
	if r.IsNull() {
		return nil
	}
	rs := slices.Clone(s.Ratios)
	slices.Sort(rs)
	c := r.Mid()
	radius := r.Breadth() / 2
	pts := make([]Point, len(rs))
	for i, ratio := range rs {
		pts[i] = c.OffsetPolar(radius, 2*math.Pi*ratio)
	}
	return pts
}

func (s SimplePolygon) Path(r Rect) *Path {
	p := NewPath()
	p.AddPolygon(s.Vertices(r))
	return p
}

// RoundedPolygon is a regular polygon, starting at the east, whose
// corners are rounded by CornerRadius. The radius is capped so adjacent
// corner arcs never overlap.
type RoundedPolygon struct {
	Sides        int
	CornerRadius float64
}

// Vertices returns the corners before rounding.
func (s RoundedPolygon) Vertices(r Rect) []Point {
	n := absInt(s.Sides)
	if n == 0 {
		n = 2
	}
	return RegularPolygonVertices(n, r, math.Pi/2)
}

// Path joins the edge midpoints with tangent arcs at each corner.
func (s RoundedPolygon) Path(r Rect) *Path {
	p := NewPath()
	pts := s.Vertices(r)
	if len(pts) == 0 {
		return p
	}
	n := len(pts)
	radius := math.Abs(s.CornerRadius)
	if radius == 0 || n < 3 {
		p.AddPolygon(pts)
		return p
	}

	interiorHalf := math.Pi * float64(n-2) / float64(n) / 2
	radius = math.Min(radius, r.Breadth()/2*math.Sin(interiorHalf))
	p.MoveTo(pts[0].Midpoint(pts[1]))
	for i := 1; i <= n; i++ {
		p.ArcTo(pts[i%n], pts[(i+1)%n], radius)
	}
	p.Close()
	return p
}

// Torx joins the vertices of a regular polygon with quadratic curves
// pulled toward the center. ControlPointRatio, clamped to [0, 0.5],
// insets the circle holding the control points by that fraction of the
// frame's breadth on each side.
type Torx struct {
	Sides             int
	ControlPointRatio float64
}

// Vertices returns the outer points the curves pass through.
func (s Torx) Vertices(r Rect) []Point {
	return RegularPolygonVertices(s.Sides, r, 0)
}

func (s Torx) Path(r Rect) *Path {
	p := NewPath()
	vertices := s.Vertices(r)
	n := len(vertices)
	if n == 0 {
		return p
	}
	ratio := clamp(s.ControlPointRatio, 0, 0.5)
	if ratio != s.ControlPointRatio {
		Logger().Debug("torx control ratio clamped", slog.Float64("ratio", s.ControlPointRatio))
	}
	inner := r.Inset(r.Breadth() * ratio)
	if inner.IsNull() {
		inner = SquareRect(r.Mid(), 0)
	}
	controls := RegularPolygonVertices(n, inner, math.Pi/float64(n))

	p.MoveTo(vertices[0])
	for i := range vertices {
		p.QuadTo(controls[i], vertices[(i+1)%n])
	}
	p.Close()
	return p
}
