package shapes

import (
	"log/slog"
	"math"
	"math/rand/v2"
)

// Check is a checkerboard of Rows by Columns cells. The top-left cell is
// filled.
type Check struct {
	Rows, Columns int
}

func (s Check) Path(r Rect) *Path {
	p := NewPath()
	cells := r.Subdivide(s.Rows, s.Columns)
	columns := absInt(s.Columns)
	for i, cell := range cells {
		row, col := i/columns, i%columns
		if (row+col)%2 == 0 {
			p.AddRect(cell)
		}
	}
	return p
}

// HatchKind selects the stroke layout of a Hatching.
type HatchKind int

const (
	// HatchLinear draws parallel lines.
	HatchLinear HatchKind = iota
	// HatchCross adds a second set of lines mirrored about the vertical.
	HatchCross
	// HatchContour bends each line through the pattern's controls.
	HatchContour
)

// HatchPattern is a hatching layout. Controls are used by HatchContour:
// one control point draws quadratic strokes, two draw cubic strokes.
// They are offsets from each stroke's start, in units of the frame.
type HatchPattern struct {
	Kind     HatchKind
	Controls []Point
}

// hatchWidthStep is the line width increase between strokes when a
// Hatching grades its widths.
const hatchWidthStep = 2

// maxHatchStrokes bounds the strokes in one set of a Hatching.
const maxHatchStrokes = 4096

// Hatching fills its frame with strokes Spacing apart, starting on the top
// edge and running at Angle radians from the horizontal for the height of
// the frame. With GradientWidth the first stroke is one unit wide and
// every following stroke is wider; otherwise all strokes are LineWidth.
type Hatching struct {
	Spacing       float64
	Angle         float64
	Pattern       HatchPattern
	LineWidth     float64
	GradientWidth bool
}

// NewHatching returns vertical hatching with strokes one unit wide.
func NewHatching(spacing float64) Hatching {
	return Hatching{Spacing: spacing, Angle: math.Pi / 2, LineWidth: 1}
}

// Path strokes at most 4096 lines per set.
func (s Hatching) Path(r Rect) *Path {
	out := NewPath()
	if r.IsNull() || !(s.Spacing > 0) || !isFinite(s.Spacing) {
		return out
	}
	sin, cos := math.Sincos(s.Angle)
	h := r.Height()
	count := math.Ceil(r.Width() / s.Spacing)
	if count > maxHatchStrokes {
		Logger().Debug("hatching strokes clamped", slog.Float64("spacing", s.Spacing))
		count = maxHatchStrokes
	}

	var strokes []*Path
	addSet := func(dir float64) {
		for i := range int(count) {
			x := r.MinX() + float64(i)*s.Spacing
			start := Pt(x, r.MinY())
			end := Pt(x+dir*cos*h, r.MinY()+sin*h)
			strokes = append(strokes, s.stroke(start, end, r))
		}
	}
	addSet(1)
	if s.Pattern.Kind == HatchCross {
		addSet(-1)
	}

	if !s.GradientWidth {
		all := NewPath()
		for _, st := range strokes {
			all.AddPath(st)
		}
		return StrokedPath(all, DefaultStrokeStyle().WithWidth(s.LineWidth))
	}
	width := 1.0
	for _, st := range strokes {
		out.AddPath(StrokedPath(st, DefaultStrokeStyle().WithWidth(width)))
		width += hatchWidthStep
	}
	return out
}

func (s Hatching) stroke(start, end Point, r Rect) *Path {
	p := NewPath()
	p.MoveTo(start)
	offset := func(u Point) Point { return start.Offset(u.X*r.Width(), u.Y*r.Height()) }
	switch {
	case s.Pattern.Kind == HatchContour && len(s.Pattern.Controls) == 1:
		p.QuadTo(offset(s.Pattern.Controls[0]), end)
	case s.Pattern.Kind == HatchContour && len(s.Pattern.Controls) >= 2:
		p.CubicTo(offset(s.Pattern.Controls[0]), offset(s.Pattern.Controls[1]), end)
	default:
		p.LineTo(end)
	}
	return p
}

func (s Hatching) AnimatableData() Scalar { return Scalar(s.Spacing) }

func (s Hatching) WithAnimatableData(d Scalar) Shape {
	s.Spacing = float64(d)
	return s
}

// maxDotsPerAxis bounds the rows and columns of a dot screen.
const maxDotsPerAxis = 256

// dotCells returns the square cells of a dot screen: cells 2·radius +
// spacing wide, shifted up and left by half the spacing so the first dot
// touches the frame corner. Screens finer than maxDotsPerAxis cells per
// axis keep only the cells nearest the top-left corner.
func dotCells(r Rect, radius, spacing float64) []Rect {
	edge := 2*radius + spacing
	if r.IsNull() || !(edge > 0) || !isFinite(edge) {
		return nil
	}
	fr, fc := math.Floor(r.Height()/edge), math.Floor(r.Width()/edge)
	if fr >= maxDotsPerAxis || fc >= maxDotsPerAxis {
		Logger().Debug("dot screen clamped", slog.Float64("edge", edge))
	}
	rows := int(math.Min(fr, maxDotsPerAxis-1))
	columns := int(math.Min(fc, maxDotsPerAxis-1))
	cells := make([]Rect, 0, (rows+1)*(columns+1))
	for row := 0; row <= rows; row++ {
		for col := 0; col <= columns; col++ {
			cells = append(cells, NewRect(
				r.MinX()-spacing/2+float64(col)*edge,
				r.MinY()-spacing/2+float64(row)*edge,
				edge, edge,
			))
		}
	}
	return cells
}

// BenDayDot is a regular screen of equal dots of Radius, Spacing apart.
type BenDayDot struct {
	Radius, Spacing float64
}

// NewBenDayDot returns a screen of 10-unit dots 10 units apart.
func NewBenDayDot() BenDayDot { return BenDayDot{Radius: 10, Spacing: 10} }

func (s BenDayDot) Path(r Rect) *Path {
	p := NewPath()
	for _, cell := range dotCells(r, s.Radius, s.Spacing) {
		p.AddPath(Circle{}.Path(cell.Inset(s.Spacing / 2)))
	}
	return p
}

// maxHalftoneFactor bounds the per-axis shrink factor of halftone dots.
const maxHalftoneFactor = 1.4

// Halftone is a dot screen whose dots shrink toward the bottom-right
// corner of the frame. Each dot's cell is inset by Spacing times a factor
// per axis that grows with the cell's position, up to 1.4.
type Halftone struct {
	Radius, Spacing float64
}

// NewHalftone returns a screen of 10-unit dots 10 units apart.
func NewHalftone() Halftone { return Halftone{Radius: 10, Spacing: 10} }

func (s Halftone) Path(r Rect) *Path {
	p := NewPath()
	for _, cell := range dotCells(r, s.Radius, s.Spacing) {
		u := r.UnitPoint(cell.Min())
		fx := clamp(maxHalftoneFactor*u.X, 0, maxHalftoneFactor)
		fy := clamp(maxHalftoneFactor*u.Y, 0, maxHalftoneFactor)
		p.AddPath(Circle{}.Path(cell.Inset(s.Spacing / 2 * (1 + fx*fy))))
	}
	return p
}

// AnnularSteinerChain is a ring of CircleCount equal circles, each
// tangent to its neighbors, to the inscribed circle and to a concentric
// inner circle. With RenderRing the chain and the inner circle are cut
// out of the inscribed disk instead.
type AnnularSteinerChain struct {
	CircleCount int
	RenderRing  bool
}

// NewAnnularSteinerChain returns a chain of six circles.
func NewAnnularSteinerChain() AnnularSteinerChain {
	return AnnularSteinerChain{CircleCount: 6}
}

// Radii returns the inner circle radius and the chain circle radius for
// an outer radius R.
func (s AnnularSteinerChain) Radii(outer float64) (inner, chain float64) {
	n := absInt(s.CircleCount)
	if n == 0 {
		return outer, 0
	}
	sin := math.Sin(math.Pi / float64(n))
	inner = outer * (1 - sin) / (1 + sin)
	return inner, (outer - inner) / 2
}

// Path draws the chain, or the ring it cuts, in the inscribed circle.
func (s AnnularSteinerChain) Path(r Rect) *Path {
	if r.IsNull() || s.CircleCount == 0 {
		return NewPath()
	}
	c := r.Mid()
	outer := r.Breadth() / 2
	inner, rho := s.Radii(outer)
	centers := RegularPolygonVertices(s.CircleCount, SquareRect(c, 2*(inner+rho)), 0)

	chain := NewPath()
	for _, v := range centers {
		chain.AddCircle(v, rho)
	}
	if !s.RenderRing {
		return chain
	}
	ring := Circle{}.Path(SquareRect(c, 2*outer))
	ring = Subtract(ring, Normalize(chain, NonZero))
	hole := NewPath()
	hole.AddCircle(c, inner)
	return Subtract(ring, hole)
}

// SpongeFilter punches Amount copies of Stencil, each Size wide, out of
// Base at positions drawn from a PCG generator seeded with Seed. The same
// seed always yields the same holes.
type SpongeFilter struct {
	Base    Shape
	Stencil Shape
	Amount  int
	Size    float64
	Seed    uint64
}

// NewSpongeFilter returns a filter punching 100 one-unit stencils.
func NewSpongeFilter(base, stencil Shape, seed uint64) SpongeFilter {
	return SpongeFilter{Base: base, Stencil: stencil, Amount: 100, Size: 1, Seed: seed}
}

// Positions returns the hole centers as unit points of the frame.
func (s SpongeFilter) Positions() []Point {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	pts := make([]Point, absInt(s.Amount))
	for i := range pts {
		x := rng.Float64()
		pts[i] = Pt(x, rng.Float64())
	}
	return pts
}

// Path subtracts the unioned stencils from the base.
func (s SpongeFilter) Path(r Rect) *Path {
	if r.IsNull() || s.Base == nil {
		return NewPath()
	}
	base := s.Base.Path(r)
	if s.Stencil == nil || s.Amount == 0 || !(s.Size > 0) {
		return base
	}
	sponge := NewPath()
	for _, u := range s.Positions() {
		sponge.AddPath(s.Stencil.Path(SquareRect(r.ProjectedPoint(u, false), s.Size)))
	}
	return Subtract(base, Normalize(sponge, NonZero))
}

// DataPath plots samples as an open polyline across the frame. Values
// are scaled by the largest magnitude so they span the frame height
// around its vertical middle, positive values upward.
type DataPath struct {
	Data []float64
}

func (s DataPath) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	data := make([]float64, 0, len(s.Data))
	for _, v := range s.Data {
		if isFinite(v) {
			data = append(data, v)
		}
	}
	if dropped := len(s.Data) - len(data); dropped > 0 {
		Logger().Debug("data path dropped non-finite samples", slog.Int("dropped", dropped))
	}
	if len(data) == 0 {
		return p
	}

	var factor float64
	for _, v := range data {
		factor = math.Max(factor, math.Abs(v))
	}
	if factor == 0 {
		factor = 1
	}
	dx := r.Width() / float64(len(data))
	pts := make([]Point, len(data))
	for i, v := range data {
		pts[i] = Pt(r.MinX()+dx*float64(i), r.MidY()-0.5*v/factor*r.Height())
	}
	p.AddLines(pts)
	return p
}

// DampedOscillator samples cos(2π(t + phase))·e^(−damping·i) at t = i /
// sampleRate for i in [0, points].
func DampedOscillator(points int, sampleRate, phase, damping float64) []float64 {
	if points < 0 || !(sampleRate > 0) {
		return nil
	}
	interval := 1 / sampleRate
	data := make([]float64, points+1)
	for i := range data {
		fi := float64(i)
		data[i] = math.Exp(-damping*fi) * math.Cos(2*math.Pi*(interval*fi+phase))
	}
	return data
}

// AnimatablePointsShape is an open polyline through unit points of the
// frame. Interpolating between two values moves every vertex.
type AnimatablePointsShape struct {
	Values AnimatablePoints
}

func (s AnimatablePointsShape) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() || len(s.Values) == 0 {
		return p
	}
	pts := make([]Point, len(s.Values))
	for i, v := range s.Values {
		pts[i] = r.ProjectedPoint(v.Point(), false)
	}
	p.AddLines(pts)
	return p
}

func (s AnimatablePointsShape) AnimatableData() AnimatablePoints { return s.Values }

func (s AnimatablePointsShape) WithAnimatableData(d AnimatablePoints) Shape {
	s.Values = d
	return s
}
