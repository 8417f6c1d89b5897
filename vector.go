package shapes

// VectorArithmetic is the algebra an animation engine needs to
// interpolate between two values of T.
type VectorArithmetic[T any] interface {
	Add(other T) T
	Sub(other T) T
	Scaled(s float64) T
	MagnitudeSquared() float64
}

// Animatable is a shape whose parameters can be interpolated.
type Animatable[T VectorArithmetic[T]] interface {
	Shape
	AnimatableData() T
	WithAnimatableData(data T) Shape
}

// Interpolate returns start + (end-start)·t.
func Interpolate[T VectorArithmetic[T]](start, end T, t float64) T {
	return end.Sub(start).Scaled(t).Add(start)
}

// Scalar is a single animatable number.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar       { return s + o }
func (s Scalar) Sub(o Scalar) Scalar       { return s - o }
func (s Scalar) Scaled(f float64) Scalar   { return s * Scalar(f) }
func (s Scalar) MagnitudeSquared() float64 { return float64(s * s) }

// Pair animates two values together.
type Pair[A VectorArithmetic[A], B VectorArithmetic[B]] struct {
	First  A
	Second B
}

// MakePair returns Pair{a, b}.
func MakePair[A VectorArithmetic[A], B VectorArithmetic[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Add(o Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Add(o.First), Second: p.Second.Add(o.Second)}
}

func (p Pair[A, B]) Sub(o Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Sub(o.First), Second: p.Second.Sub(o.Second)}
}

func (p Pair[A, B]) Scaled(f float64) Pair[A, B] {
	return Pair[A, B]{First: p.First.Scaled(f), Second: p.Second.Scaled(f)}
}

func (p Pair[A, B]) MagnitudeSquared() float64 {
	return p.First.MagnitudeSquared() + p.Second.MagnitudeSquared()
}

// VectorPoint is an animatable point, usually normalized to a frame.
type VectorPoint struct {
	X, Y float64
}

func (v VectorPoint) Add(o VectorPoint) VectorPoint { return VectorPoint{v.X + o.X, v.Y + o.Y} }
func (v VectorPoint) Sub(o VectorPoint) VectorPoint { return VectorPoint{v.X - o.X, v.Y - o.Y} }
func (v VectorPoint) Scaled(f float64) VectorPoint  { return VectorPoint{v.X * f, v.Y * f} }
func (v VectorPoint) MagnitudeSquared() float64     { return v.X*v.X + v.Y*v.Y }

// Point converts v to a Point.
func (v VectorPoint) Point() Point {
	return Point(v)
}

// Vector is a componentwise list of numbers. Adding or subtracting lists
// of different lengths truncates to the shorter one, so an empty list
// combined with anything is empty.
type Vector []float64

func (v Vector) Add(o Vector) Vector {
	return zipLists(v, o, func(a, b float64) float64 { return a + b })
}

func (v Vector) Sub(o Vector) Vector {
	return zipLists(v, o, func(a, b float64) float64 { return a - b })
}

func (v Vector) Scaled(f float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * f
	}
	return out
}

func (v Vector) MagnitudeSquared() float64 {
	var m float64
	for _, x := range v {
		m += x * x
	}
	return m
}

// AnimatablePoints is a list of animatable points with the same
// truncation rule as Vector.
type AnimatablePoints []VectorPoint

func (ps AnimatablePoints) Add(o AnimatablePoints) AnimatablePoints {
	return zipLists(ps, o, VectorPoint.Add)
}

func (ps AnimatablePoints) Sub(o AnimatablePoints) AnimatablePoints {
	return zipLists(ps, o, VectorPoint.Sub)
}

func (ps AnimatablePoints) Scaled(f float64) AnimatablePoints {
	out := make(AnimatablePoints, len(ps))
	for i, p := range ps {
		out[i] = p.Scaled(f)
	}
	return out
}

func (ps AnimatablePoints) MagnitudeSquared() float64 {
	var m float64
	for _, p := range ps {
		m += p.MagnitudeSquared()
	}
	return m
}

// zipLists combines a and b elementwise up to the shorter length, so an
// empty operand yields an empty result.
func zipLists[S ~[]E, E any](a, b S, op func(E, E) E) S {
	n := min(len(a), len(b))
	out := make(S, n)
	for i := 0; i < n; i++ {
		out[i] = op(a[i], b[i])
	}
	return out
}
