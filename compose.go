package shapes

import "math"

// InsetShape shrinks the frame by Insets before delegating to Shape.
type InsetShape struct {
	Shape  Shape
	Insets EdgeInsets
}

// InsetBy returns s drawn inside its frame inset by amount on every edge.
func InsetBy(s Shape, amount float64) InsetShape {
	return InsetShape{Shape: s, Insets: UniformInsets(amount)}
}

// InsetEdgesBy returns s drawn inside its frame inset per edge.
func InsetEdgesBy(s Shape, insets EdgeInsets) InsetShape {
	return InsetShape{Shape: s, Insets: insets}
}

// Path draws the wrapped shape in r inset by the insets. An inset that
// swallows the frame draws nothing.
func (s InsetShape) Path(r Rect) *Path {
	inner := r.InsetEdges(s.Insets)
	if inner.IsNull() || s.Shape == nil {
		return NewPath()
	}
	return s.Shape.Path(inner)
}

// Inset replaces the insets with amount on every edge.
func (s InsetShape) Inset(amount float64) Shape {
	s.Insets = UniformInsets(amount)
	return s
}

// SizeThatFits delegates to the wrapped shape, or keeps the proposal.
func (s InsetShape) SizeThatFits(proposal Size) Size {
	if f, ok := s.Shape.(SizeFitter); ok {
		return f.SizeThatFits(proposal)
	}
	return FitProposal(proposal)
}

// InvertedShape covers the frame except for Shape drawn inside the frame
// inset by Inset.
type InvertedShape struct {
	Shape Shape
	Inset float64
}

func (s InvertedShape) Path(r Rect) *Path {
	frame := NewPath()
	frame.AddRect(r)
	if frame.IsEmpty() {
		return frame
	}
	inner := r.Inset(s.Inset)
	if inner.IsNull() {
		// An inset larger than the frame hides the shape entirely.
		inner = SquareRect(r.Mid(), 0)
	}
	return Subtract(frame, s.Shape.Path(inner))
}

func (s InvertedShape) AnimatableData() Scalar { return Scalar(s.Inset) }

func (s InvertedShape) WithAnimatableData(d Scalar) Shape {
	s.Inset = float64(d)
	return s
}

// CompositeAction selects how a CompositeShape combines its operands.
type CompositeAction int

const (
	ActionAdding CompositeAction = iota
	ActionSubtracting
)

// CompositeShape combines two shapes drawn in the same frame.
type CompositeShape struct {
	Base      Shape
	Appendage Shape
	Action    CompositeAction
}

// Adding returns the union of a and b.
func Adding(a, b Shape) CompositeShape {
	return CompositeShape{Base: a, Appendage: b, Action: ActionAdding}
}

// Subtracting returns a with b removed.
func Subtracting(a, b Shape) CompositeShape {
	return CompositeShape{Base: a, Appendage: b, Action: ActionSubtracting}
}

func (s CompositeShape) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	base, app := s.Base.Path(r), s.Appendage.Path(r)
	if s.Action == ActionSubtracting {
		return Subtract(base, app)
	}
	return Union(base, app)
}

// SkewedShape skews Shape about an anchor given in unit coordinates of
// the frame.
type SkewedShape struct {
	Shape Shape
	// Skew holds the horizontal factor in X and the vertical one in Y.
	Skew   Point
	Anchor Point
}

func (s SkewedShape) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	anchor := r.ProjectedPoint(s.Anchor, false)
	return s.Shape.Path(r).Transform(SkewAbout(s.Skew.X, s.Skew.Y, anchor))
}

// TiledShape repeats Shape in a Rows×Columns grid of cells.
type TiledShape struct {
	Shape   Shape
	Rows    int
	Columns int
}

func (s TiledShape) Path(r Rect) *Path {
	p := NewPath()
	for _, cell := range r.Subdivide(s.Rows, s.Columns) {
		p.AddPath(s.Shape.Path(cell))
	}
	return p
}

// CirclePattern repeats Shape on the vertices of a regular polygon. Each
// copy is drawn in a square of side breadth/Repetitions centered on its
// vertex and turned to face away from the center.
type CirclePattern struct {
	Shape       Shape
	Repetitions int
}

func (s CirclePattern) Path(r Rect) *Path {
	p := NewPath()
	n := absInt(s.Repetitions)
	if n == 0 || r.IsNull() {
		return p
	}
	side := r.Breadth() / float64(n)
	c := r.Mid()
	for _, v := range RegularPolygonVertices(n, r, 0) {
		angle := v.Sub(c).Angle() + math.Pi/2
		p.AddPath(s.Shape.Path(SquareRect(v, side)).RotateAbout(angle, v))
	}
	return p
}

// Alignment positions a path's bounding box inside a frame.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignTopLeading
	AlignTop
	AlignTopTrailing
	AlignLeading
	AlignTrailing
	AlignBottomLeading
	AlignBottom
	AlignBottomTrailing
)

// unit returns the alignment as a unit point.
func (a Alignment) unit() Point {
	switch a {
	case AlignTopLeading:
		return UnitTopLeft
	case AlignTop:
		return UnitTop
	case AlignTopTrailing:
		return UnitTopRight
	case AlignLeading:
		return UnitLeft
	case AlignTrailing:
		return UnitRight
	case AlignBottomLeading:
		return UnitBottomLeft
	case AlignBottom:
		return UnitBottom
	case AlignBottomTrailing:
		return UnitBottomRight
	default:
		return UnitCenter
	}
}

// AlignmentShape translates Shape so its bounding box touches the frame
// edges named by Alignment.
type AlignmentShape struct {
	Shape     Shape
	Alignment Alignment
}

func (s AlignmentShape) Path(r Rect) *Path {
	p := s.Shape.Path(r)
	bounds := p.BoundingBox()
	if bounds.IsNull() || r.IsNull() {
		return p
	}
	u := s.Alignment.unit()
	target := r.ProjectedPoint(u, false)
	current := bounds.ProjectedPoint(u, false)
	return p.Translate(target.X-current.X, target.Y-current.Y)
}

// NormalizedShape removes self-overlap from Shape under Rule.
type NormalizedShape struct {
	Shape Shape
	Rule  FillRule
}

func (s NormalizedShape) Path(r Rect) *Path {
	return Normalize(s.Shape.Path(r), s.Rule)
}

// RotatedShape rotates Shape clockwise by Angle radians about the frame's
// center.
type RotatedShape struct {
	Shape Shape
	Angle float64
}

func (s RotatedShape) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	return s.Shape.Path(r).RotateAbout(s.Angle, r.Mid())
}

// ScaledShape scales Shape about an anchor in unit coordinates.
type ScaledShape struct {
	Shape  Shape
	SX, SY float64
	Anchor Point
}

func (s ScaledShape) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	return s.Shape.Path(r).ScaleAbout(s.SX, s.SY, r.ProjectedPoint(s.Anchor, false))
}

// StrokeBorderedShape strokes Shape inside its frame: the frame is inset
// by half the line width so the stroke stays within it. The outline may
// be trimmed to the fractions TrimFrom..TrimTo of its length first; a
// zero TrimTo means the whole outline.
type StrokeBorderedShape struct {
	Shape    Shape
	Style    StrokeStyle
	TrimFrom float64
	TrimTo   float64
}

// StrokeBordered returns s stroked inside its frame with style.
func StrokeBordered(s Shape, style StrokeStyle) StrokeBorderedShape {
	return StrokeBorderedShape{Shape: s, Style: style, TrimTo: 1}
}

func (s StrokeBorderedShape) Path(r Rect) *Path {
	inner := r.Inset(s.Style.Width / 2)
	if inner.IsNull() {
		return NewPath()
	}
	return StrokedPath(trimPath(s.Shape.Path(inner), s.TrimFrom, s.TrimTo), s.Style)
}
