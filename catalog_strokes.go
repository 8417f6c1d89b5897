package shapes

// trimPath keeps the fractions from..to of p's length. A zero to means
// the whole path.
func trimPath(p *Path, from, to float64) *Path {
	if to == 0 {
		to = 1
	}
	if from > 0 || to < 1 {
		return p.Trimmed(from, to)
	}
	return p
}

// Bar is a horizontal stroke through the middle of the frame. Style.Width
// is a fraction of the frame height, and the dash array is stretched so
// RepeatCount cycles span the frame width.
type Bar struct {
	Style       StrokeStyle
	RepeatCount float64
}

func (s Bar) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	style := StrokePattern{Style: s.Style, RepeatCount: s.RepeatCount}.Applied(r.Width())
	style.Width = r.Height() * s.Style.Width
	return StrokedPath(HorizontalLine().Path(r), style)
}

// Ring strokes the inscribed circle inside the frame, with the dash array
// stretched so RepeatCount cycles span the circumference of the stroke's
// center line.
type Ring struct {
	Style       StrokeStyle
	RepeatCount float64
}

func (s Ring) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	lw := s.Style.Width
	perimeter := CirclePerimeter(r.Breadth() - lw)
	style := StrokePattern{Style: s.Style, RepeatCount: s.RepeatCount}.Applied(perimeter)
	return StrokedPath(Circle{}.Path(r.Inset(lw/2)), style)
}

func (Ring) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// BorderedRectangle strokes the frame's outline inside the frame, with
// RepeatCount dash cycles around it.
type BorderedRectangle struct {
	Style       StrokeStyle
	RepeatCount float64
}

func (s BorderedRectangle) Path(r Rect) *Path {
	inner := r.Inset(s.Style.Width / 2)
	if inner.IsNull() {
		return NewPath()
	}
	style := StrokePattern{Style: s.Style, RepeatCount: s.RepeatCount}.Applied(RectanglePerimeter(inner))
	return StrokedPath(Rectangle{}.Path(inner), style)
}

func (BorderedRectangle) SizeThatFits(proposal Size) Size { return FitProposal(proposal) }

// BorderedPolygon strokes a regular polygon inside the frame, with
// RepeatCount dash cycles around it.
type BorderedPolygon struct {
	Sides       int
	Style       StrokeStyle
	RepeatCount float64
}

func (s BorderedPolygon) Path(r Rect) *Path {
	inner := r.Inset(s.Style.Width / 2)
	if inner.IsNull() || s.Sides == 0 {
		return NewPath()
	}
	poly := RegularPolygon{Sides: s.Sides}
	style := StrokePattern{Style: s.Style, RepeatCount: s.RepeatCount}.
		Applied(PolygonPerimeter(s.Sides, inner.Breadth()))
	return StrokedPath(poly.Path(inner), style)
}

func (BorderedPolygon) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// StrokeStyledCircle is a dashed ring of Segments repetitions of
// DashPattern.
type StrokeStyledCircle struct {
	Segments       int
	DashPattern    []float64
	LineWidth      LineWidth
	DashPhaseRatio float64
	Cap            LineCap
	Join           LineJoin
	TrimFrom       float64
	TrimTo         float64
}

// NewStrokeStyledCircle returns twelve equal dashes and gaps, one tenth of
// the breadth wide.
func NewStrokeStyledCircle() StrokeStyledCircle {
	return StrokeStyledCircle{
		Segments:    12,
		DashPattern: []float64{1, 1},
		LineWidth:   LineWidth{Ratio: 0.1},
		TrimTo:      1,
	}
}

func (s StrokeStyledCircle) Path(r Rect) *Path {
	n := absInt(s.Segments)
	if r.IsNull() || n == 0 {
		return NewPath()
	}
	lw := s.LineWidth.Resolve(r)
	cycle := CirclePerimeter(r.Breadth()-lw) / float64(n)

	dp := NormalizeDash(cycle, s.DashPattern, 0, 1, n)
	style := DefaultStrokeStyle().WithWidth(lw).WithCap(s.Cap).WithJoin(s.Join).
		WithDash(dp.Dash, cycle*s.DashPhaseRatio)

	ring := Circle{}.Path(r.Inset(lw / 2))
	return StrokedPath(trimPath(ring, s.TrimFrom, s.TrimTo), style)
}

func (StrokeStyledCircle) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// StrokeStyledPolygon strokes a star polygon with Dashes dashes around
// its perimeter, each filling DashFillRatio of its cycle. The shape is
// drawn in the largest centered square.
type StrokeStyledPolygon struct {
	Sides          int
	Dashes         int
	Density        int
	DashFillRatio  float64
	LineWidth      LineWidth
	DashPhaseRatio float64
	Cap            LineCap
	Join           LineJoin
	TrimFrom       float64
	TrimTo         float64
}

// NewStrokeStyledPolygon returns a convex polygon with round-capped
// dashes filling 70% of each cycle.
func NewStrokeStyledPolygon(sides, dashes int) StrokeStyledPolygon {
	return StrokeStyledPolygon{
		Sides:         sides,
		Dashes:        dashes,
		Density:       1,
		DashFillRatio: 0.7,
		LineWidth:     LineWidth{Ratio: 0.01},
		Cap:           CapRound,
		TrimTo:        1,
	}
}

func (s StrokeStyledPolygon) Path(r Rect) *Path {
	n := absInt(s.Sides)
	if r.IsNull() || n == 0 {
		return NewPath()
	}
	lw := s.LineWidth.Resolve(r)
	frame := centeredSquare(r).Inset(lw / 2)
	if frame.IsNull() {
		return NewPath()
	}
	perimeter := PolygonPerimeter(n, frame.Breadth())
	cycle := 0.0
	if s.Dashes > 0 {
		cycle = perimeter / float64(s.Dashes)
	}

	style := DefaultStrokeStyle().WithWidth(lw).WithCap(s.Cap).WithJoin(s.Join).
		WithDash([]float64{cycle * s.DashFillRatio, cycle * (1 - s.DashFillRatio)}, cycle*s.DashPhaseRatio)
	star := StarPolygon{Points: n, Density: s.Density}.Path(frame)
	return StrokedPath(trimPath(star, s.TrimFrom, s.TrimTo), style)
}

func (StrokeStyledPolygon) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// StrokeStyledRectangle strokes the frame's outline inside the frame with
// Dashes dashes, each filling DashFillRatio of its cycle. The line width
// is resolved against the frame.
type StrokeStyledRectangle struct {
	Dashes         int
	DashFillRatio  float64
	LineWidth      LineWidth
	DashPhaseRatio float64
	Cap            LineCap
	Join           LineJoin
	TrimFrom       float64
	TrimTo         float64
}

// NewStrokeStyledRectangle returns four short round-capped dashes.
func NewStrokeStyledRectangle() StrokeStyledRectangle {
	return StrokeStyledRectangle{
		Dashes:         4,
		DashFillRatio:  0.1,
		LineWidth:      LineWidth{Ratio: 0.01},
		DashPhaseRatio: 0.36,
		Cap:            CapRound,
		TrimTo:         1,
	}
}

func (s StrokeStyledRectangle) Path(r Rect) *Path {
	if r.IsNull() {
		return NewPath()
	}
	lw := s.LineWidth.Resolve(r)
	inner := r.Inset(lw / 2)
	if inner.IsNull() {
		return NewPath()
	}
	cycle := 0.0
	if s.Dashes > 0 {
		cycle = RectanglePerimeter(inner) / float64(s.Dashes)
	}

	style := DefaultStrokeStyle().WithWidth(lw).WithCap(s.Cap).WithJoin(s.Join).
		WithDash([]float64{cycle * s.DashFillRatio, cycle * (1 - s.DashFillRatio)}, cycle*s.DashPhaseRatio)
	return StrokedPath(trimPath(Rectangle{}.Path(inner), s.TrimFrom, s.TrimTo), style)
}

func (StrokeStyledRectangle) SizeThatFits(proposal Size) Size { return FitProposal(proposal) }
