package shapes

import "math"

// Point is a 2D coordinate. Depending on context it is absolute (layout
// units) or normalized to a frame, where (0,0) is the top-left corner and
// (1,1) the bottom-right one.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Named unit points, normalized to a frame.
var (
	UnitTopLeft     = Pt(0, 0)
	UnitTop         = Pt(0.5, 0)
	UnitTopRight    = Pt(1, 0)
	UnitLeft        = Pt(0, 0.5)
	UnitCenter      = Pt(0.5, 0.5)
	UnitRight       = Pt(1, 0.5)
	UnitBottomLeft  = Pt(0, 1)
	UnitBottom      = Pt(0.5, 1)
	UnitBottomRight = Pt(1, 1)
)

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div divides both coordinates by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of p and q as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns Length()².
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns the unit vector pointing along p, or the zero point.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Div(l)
}

// Rotate rotates p about the origin. Positive angles turn clockwise on a
// y-down screen.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp interpolates linearly: t=0 yields p, t=1 yields q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Offset translates p by (dx, dy).
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// OffsetPolar translates p by magnitude along angle.
func (p Point) OffsetPolar(magnitude, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X + magnitude*cos, Y: p.Y + magnitude*sin}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// Angle returns atan2(y, x).
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Clamped01 clamps both coordinates into [0, 1].
func (p Point) Clamped01() Point {
	return Point{X: clamp(p.X, 0, 1), Y: clamp(p.Y, 0, 1)}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
