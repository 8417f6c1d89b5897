package shapes

import "math"

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Breadth returns the shorter absolute side.
func (s Size) Breadth() float64 {
	return math.Min(math.Abs(s.Width), math.Abs(s.Height))
}

// EdgeInsets holds per-edge inset amounts. Positive values shrink a rect,
// negative values grow it.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns insets of amount on every edge.
func UniformInsets(amount float64) EdgeInsets {
	return EdgeInsets{Top: amount, Left: amount, Bottom: amount, Right: amount}
}

// Negated flips the sign of every edge.
func (e EdgeInsets) Negated() EdgeInsets {
	return EdgeInsets{Top: -e.Top, Left: -e.Left, Bottom: -e.Bottom, Right: -e.Right}
}

// Rect is a frame given by its origin and size. Width and height may be
// negative; accessors always report the standardized frame.
type Rect struct {
	Origin Point
	Size   Size
}

// NullRect is the sentinel returned when an inset or intersection leaves
// nothing. Composition code treats it as "render nothing".
var NullRect = Rect{Origin: Point{X: math.Inf(1), Y: math.Inf(1)}}

// NewRect creates a rect from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectFromPoints returns the smallest rect containing p1 and p2.
func RectFromPoints(p1, p2 Point) Rect {
	minX, minY := math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y)
	return NewRect(minX, minY, math.Max(p1.X, p2.X)-minX, math.Max(p1.Y, p2.Y)-minY)
}

// RectFromCenter returns a rect of the given size centered on center.
func RectFromCenter(center Point, size Size) Rect {
	return NewRect(center.X-size.Width/2, center.Y-size.Height/2, size.Width, size.Height)
}

// SquareRect returns a square of the given side centered on center.
func SquareRect(center Point, side float64) Rect {
	return RectFromCenter(center, Size{Width: side, Height: side})
}

// IsNull reports whether r is the NullRect sentinel.
func (r Rect) IsNull() bool {
	return math.IsInf(r.Origin.X, 1) || math.IsInf(r.Origin.Y, 1)
}

// IsEmpty reports whether r is null or has no area.
func (r Rect) IsEmpty() bool {
	return r.IsNull() || r.Size.Width == 0 || r.Size.Height == 0
}

// Standardized returns r with non-negative width and height.
func (r Rect) Standardized() Rect {
	if r.IsNull() {
		return NullRect
	}
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Standardized().Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Standardized().Origin.Y }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.MinX() + r.Width()/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.MinY() + r.Height()/2 }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.MinX() + r.Width() }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.MinY() + r.Height() }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX(), Y: r.MinY()} }

// Mid returns the center.
func (r Rect) Mid() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

// Width returns the absolute width; zero for the null rect.
func (r Rect) Width() float64 {
	if r.IsNull() {
		return 0
	}
	return math.Abs(r.Size.Width)
}

// Height returns the absolute height; zero for the null rect.
func (r Rect) Height() float64 {
	if r.IsNull() {
		return 0
	}
	return math.Abs(r.Size.Height)
}

// Breadth returns the shorter side.
func (r Rect) Breadth() float64 {
	return math.Min(r.Width(), r.Height())
}

// Length returns the longer side.
func (r Rect) Length() float64 {
	return math.Max(r.Width(), r.Height())
}

// AspectRatio returns width/height, or 0 when the height is 0.
func (r Rect) AspectRatio() float64 {
	h := r.Height()
	if h == 0 {
		return 0
	}
	return r.Width() / h
}

// Offset translates r.
func (r Rect) Offset(dx, dy float64) Rect {
	if r.IsNull() {
		return NullRect
	}
	r.Origin = r.Origin.Offset(dx, dy)
	return r
}

// Inset shrinks every edge by amount. Negative amounts grow the rect.
func (r Rect) Inset(amount float64) Rect {
	return r.InsetEdges(UniformInsets(amount))
}

// InsetEdges shrinks each edge by its own amount. The rect is standardized
// first; when the result would have negative extent, NullRect is returned.
func (r Rect) InsetEdges(e EdgeInsets) Rect {
	if r.IsNull() {
		return NullRect
	}
	s := r.Standardized()
	w := s.Size.Width - e.Left - e.Right
	h := s.Size.Height - e.Top - e.Bottom
	if w < 0 || h < 0 || math.IsNaN(w) || math.IsNaN(h) {
		return NullRect
	}
	return NewRect(s.Origin.X+e.Left, s.Origin.Y+e.Top, w, h)
}

// Union returns the smallest rect containing r and other. A null operand
// is ignored.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsNull():
		return other.Standardized()
	case other.IsNull():
		return r.Standardized()
	}
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Intersection returns the overlap of r and other, or NullRect when they
// are disjoint.
func (r Rect) Intersection(other Rect) Rect {
	if r.IsNull() || other.IsNull() {
		return NullRect
	}
	minX := math.Max(r.MinX(), other.MinX())
	minY := math.Max(r.MinY(), other.MinY())
	maxX := math.Min(r.MaxX(), other.MaxX())
	maxY := math.Min(r.MaxY(), other.MaxY())
	if maxX < minX || maxY < minY {
		return NullRect
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	if r.IsNull() {
		return false
	}
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Subdivide splits r into a row-major grid of equally sized cells.
// Negative counts use their absolute value; a zero count yields nil.
func (r Rect) Subdivide(rows, columns int) []Rect {
	rows, columns = absInt(rows), absInt(columns)
	if rows == 0 || columns == 0 || r.IsNull() {
		return nil
	}
	s := r.Standardized()
	dx := s.Size.Width / float64(columns)
	dy := s.Size.Height / float64(rows)
	cells := make([]Rect, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			cells = append(cells, NewRect(
				s.Origin.X+float64(col)*dx,
				s.Origin.Y+float64(row)*dy,
				dx, dy,
			))
		}
	}
	return cells
}

// ProjectedPoint maps a normalized point into r. With boundToFrame the
// unit point is clamped to [0, 1] first.
func (r Rect) ProjectedPoint(unit Point, boundToFrame bool) Point {
	if boundToFrame {
		unit = unit.Clamped01()
	}
	return Point{
		X: r.MinX() + unit.X*r.Width(),
		Y: r.MinY() + unit.Y*r.Height(),
	}
}

// UnitPoint is the inverse of ProjectedPoint. Axes with zero extent map
// to 0.
func (r Rect) UnitPoint(p Point) Point {
	var u Point
	if w := r.Width(); w != 0 {
		u.X = (p.X - r.MinX()) / w
	}
	if h := r.Height(); h != 0 {
		u.Y = (p.Y - r.MinY()) / h
	}
	return u
}
