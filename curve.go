package shapes

import "math"

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval returns the point at parameter t.
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return q.P0.Mul(mt * mt).Add(q.P1.Mul(2 * mt * t)).Add(q.P2.Mul(t * t))
}

// Split divides the curve at t using de Casteljau's construction.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	m := a.Lerp(b, t)
	return QuadBez{q.P0, a, m}, QuadBez{m, b, q.P2}
}

// Subdivide splits the curve at its parametric midpoint.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	return q.Split(0.5)
}

// Extrema returns the parameters in (0, 1) where a coordinate of the
// curve has a local extreme.
func (q QuadBez) Extrema() []float64 {
	var ts []float64
	for _, d := range [2][2]float64{
		{q.P1.X - q.P0.X, q.P2.X - q.P1.X},
		{q.P1.Y - q.P0.Y, q.P2.Y - q.P1.Y},
	} {
		// Derivative is linear: 2((1-t)d0 + t d1).
		den := d[0] - d[1]
		if den == 0 {
			continue
		}
		if t := d[0] / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	r := RectFromPoints(q.P0, q.P2)
	for _, t := range q.Extrema() {
		r = r.Union(RectFromPoints(q.Eval(t), q.Eval(t)))
	}
	return r
}

// flatness returns the squared distance from the control point to the
// chord midpoint.
func (q QuadBez) flatness() float64 {
	return q.P1.Sub(q.P0.Midpoint(q.P2)).LengthSquared()
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	return c.P0.Mul(mt * mt * mt).
		Add(c.P1.Mul(3 * mt * mt * t)).
		Add(c.P2.Mul(3 * mt * t * t)).
		Add(c.P3.Mul(t * t * t))
}

// Split divides the curve at t using de Casteljau's construction.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	m := abc.Lerp(bcd, t)
	return CubicBez{c.P0, ab, abc, m}, CubicBez{m, bcd, cd, c.P3}
}

// Subdivide splits the curve at its parametric midpoint.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

// Extrema returns the parameters in (0, 1) where a coordinate of the
// curve has a local extreme.
func (c CubicBez) Extrema() []float64 {
	var ts []float64
	coord := func(p0, p1, p2, p3 float64) {
		// B'(t)/3 = a t² + b t + k
		a := -p0 + 3*p1 - 3*p2 + p3
		b := 2 * (p0 - 2*p1 + p2)
		k := p1 - p0
		ts = append(ts, SolveQuadraticInUnitInterval(a, b, k)...)
	}
	coord(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	coord(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return ts
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	r := RectFromPoints(c.P0, c.P3)
	for _, t := range c.Extrema() {
		pt := c.Eval(t)
		r = r.Union(RectFromPoints(pt, pt))
	}
	return r
}

// flatness returns a squared bound on the distance between the curve and
// its chord, scaled by 16.
func (c CubicBez) flatness() float64 {
	u := c.P1.Mul(3).Sub(c.P0.Mul(2)).Sub(c.P3)
	v := c.P2.Mul(3).Sub(c.P0).Sub(c.P3.Mul(2))
	return math.Max(u.LengthSquared(), v.LengthSquared())
}
