package shapes

import (
	"log/slog"
	"math"
	"slices"
	"strings"
)

// ReuleauxPolygon is a curve of constant width: one circular arc per
// vertex of a regular polygon, centered on the opposite vertex. Sides must
// be odd. The curve is scaled so its width equals the frame's breadth.
type ReuleauxPolygon struct {
	Sides int
}

// ReuleauxTriangle returns the three-sided Reuleaux polygon.
func ReuleauxTriangle() ReuleauxPolygon {
	return ReuleauxPolygon{Sides: 3}
}

// raw returns the unfitted curve and its vertices.
func (s ReuleauxPolygon) raw(r Rect) (*Path, []Point) {
	p := NewPath()
	vertices := RegularPolygonVertices(s.Sides, r, 0)
	n := len(vertices)
	if n == 0 {
		return p, nil
	}
	radius := vertices[0].Distance(vertices[(n-1)/2])
	half := math.Pi / (2 * float64(n))
	c := r.Mid()
	for _, v := range vertices {
		// Each arc is centered on the direction from the vertex through
		// the center of the polygon.
		start := c.Sub(v).Angle() - half
		p.RelativeArc(v, radius, start, 2*half)
	}
	p.Close()
	return p, vertices
}

func (s ReuleauxPolygon) fit(r Rect) (*Path, []Point) {
	p, vertices := s.raw(r)
	if p.IsEmpty() {
		return p, nil
	}
	m := fitTransform(p.BoundingBox(), centeredSquare(r), FitUniform)
	for i, v := range vertices {
		vertices[i] = m.TransformPoint(v)
	}
	return p.Transform(m), vertices
}

// Path draws one arc per side, each centered on the opposite vertex, and
// fits the outline to the centered square.
func (s ReuleauxPolygon) Path(r Rect) *Path {
	p, _ := s.fit(r)
	return p
}

// Vertices returns the corners of the fitted curve.
func (s ReuleauxPolygon) Vertices(r Rect) []Point {
	_, v := s.fit(r)
	return v
}

func (ReuleauxPolygon) SizeThatFits(proposal Size) Size { return FitSquare(proposal) }

// Egg is Moss's egg, built with compass and straightedge on a triangle
// whose apex angle is ApexAngle degrees. The absolute value is clamped to
// [61, 179], the range where the construction is valid.
type Egg struct {
	ApexAngle float64
}

func (s Egg) apex() float64 {
	a := math.Abs(s.ApexAngle)
	if math.IsNaN(a) {
		a = 90
	}
	c := clamp(a, 61, 179)
	if c != a {
		Logger().Debug("egg apex angle clamped", slog.Float64("apex", s.ApexAngle), slog.Float64("used", c))
	}
	return c
}

// Path draws the four arcs of the egg and fits them to the frame.
func (s Egg) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	apex := s.apex()
	angleC := (180 - apex) / 2

	mid := r.Mid()
	ac := r.Breadth()
	a := mid.Offset(-ac/2, 0)
	c := mid.Offset(ac/2, 0)
	bc := ac / 2 / math.Sin(rad(apex/2))
	bq := math.Sqrt(bc*bc - ac*ac/4)
	b := mid.Offset(0, -bq)
	bd := ac - bc

	p.MoveTo(c)
	// Semicircle on the base AC.
	p.Arc(mid, ac/2, 0, math.Pi, true)
	// From A to D around C.
	p.Arc(c, ac, math.Pi, rad(180+angleC), true)
	// From D to E around B.
	p.Arc(b, bd, rad(180+angleC), rad(180+angleC+apex), true)
	// From E back to C around A.
	p.Arc(a, ac, rad(180+angleC+apex), 0, true)
	p.Close()

	return RecenterAndScale(p, r, FitUniform)
}

// AnimatableData returns the apex angle in degrees.
func (s Egg) AnimatableData() Scalar { return Scalar(s.ApexAngle) }

func (s Egg) WithAnimatableData(d Scalar) Shape {
	s.ApexAngle = float64(d)
	return s
}

// Named growth rates for Spiral.
const (
	Archimedean = 1.0
	Fermat      = 2.0
	Hyperbolic  = -1.0
	Lituus      = -2.0
)

// Spiral draws r = a + b·θ^(1/c) for θ in [0, 2π·Turns], where a is
// Offset times the frame's breadth, b spaces the turns so they fit the
// frame and c is GrowthRate. Consecutive samples are joined with
// quadratic curves whose control point is the intersection of the
// tangents at both samples.
type Spiral struct {
	Turns      float64
	Offset     float64
	GrowthRate float64
}

// NewSpiral returns an Archimedean spiral with the given number of turns.
func NewSpiral(turns float64) Spiral {
	return Spiral{Turns: turns, GrowthRate: Archimedean}
}

// maxSpiralTurns bounds Spiral.Turns; each turn takes twelve samples.
const maxSpiralTurns = 1000

type spiralSample struct {
	pt, tangent Point
}

// Path samples twelve points per turn, clamping Turns to 1000.
func (s Spiral) Path(r Rect) *Path {
	p := NewPath()
	turns := math.Abs(s.Turns)
	if r.IsNull() || turns == 0 || !isFinite(turns) {
		return p
	}
	if turns > maxSpiralTurns {
		Logger().Debug("spiral turns clamped", slog.Float64("turns", s.Turns))
		turns = maxSpiralTurns
	}
	c := s.GrowthRate
	if c == 0 || math.IsNaN(c) {
		c = Archimedean
	}
	a := s.Offset * r.Breadth()
	b := r.Breadth() / 2 / (2 * math.Pi * turns)
	maxTheta := 2 * math.Pi * turns
	const dTheta = 2 * math.Pi / 12

	thetas := make([]float64, 0, int(maxTheta/dTheta)+2)
	for i := 0; float64(i)*dTheta <= maxTheta; i++ {
		thetas = append(thetas, float64(i)*dTheta)
	}
	if last := thetas[len(thetas)-1]; last != maxTheta {
		thetas = append(thetas, maxTheta)
	}

	center := r.Mid()
	samples := make([]spiralSample, 0, len(thetas))
	for _, th := range thetas {
		rad := a + b*math.Pow(th, 1/c)
		dr := b / c * math.Pow(th, (1-c)/c)
		sin, cos := math.Sincos(th)
		pt := Pt(center.X+rad*cos, center.Y+rad*sin)
		if !pt.IsFinite() {
			continue
		}
		samples = append(samples, spiralSample{
			pt:      pt,
			tangent: Pt(dr*cos-rad*sin, dr*sin+rad*cos),
		})
	}
	if dropped := len(thetas) - len(samples); dropped > 0 {
		Logger().Debug("spiral samples dropped", slog.Int("count", dropped))
	}

	for i, smp := range samples {
		if i == 0 {
			p.MoveTo(smp.pt)
			continue
		}
		prev := samples[i-1]
		p.QuadTo(tangentIntersection(prev.pt, prev.tangent, smp.pt, smp.tangent), smp.pt)
	}
	return p
}

// tangentIntersection returns where the line through p1 along d1 meets
// the line through p2 along d2, or p2 when they do not meet.
func tangentIntersection(p1, d1, p2, d2 Point) Point {
	den := d1.Cross(d2)
	if den == 0 || !d1.IsFinite() || !d2.IsFinite() {
		return p2
	}
	t := p2.Sub(p1).Cross(d2) / den
	pt := p1.Add(d1.Mul(t))
	if !pt.IsFinite() {
		return p2
	}
	return pt
}

// DragonCurve is the Heighway dragon after Steps folds. Each fold appends
// "R" and the reversed, mirrored turn sequence so far; the sequence is
// then walked in unit steps turning by AngleDegrees. Steps is clamped to
// [0, 20].
type DragonCurve struct {
	Steps        int
	AngleDegrees float64
}

// NewDragonCurve returns a dragon curve with right-angle turns.
func NewDragonCurve(steps int) DragonCurve {
	return DragonCurve{Steps: steps, AngleDegrees: 90}
}

// dragonTurns returns the turn sequence after steps folds.
func dragonTurns(steps int) string {
	seq := ""
	for range steps {
		var sb strings.Builder
		sb.Grow(2*len(seq) + 1)
		sb.WriteString(seq)
		sb.WriteByte('R')
		for i := len(seq) - 1; i >= 0; i-- {
			if seq[i] == 'R' {
				sb.WriteByte('L')
			} else {
				sb.WriteByte('R')
			}
		}
		seq = sb.String()
	}
	return seq
}

// Path walks the fold sequence from the center and fits it to the frame.
func (s DragonCurve) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	steps := absInt(s.Steps)
	if steps > 20 {
		Logger().Debug("dragon curve steps clamped", slog.Int("steps", s.Steps))
		steps = 20
	}

	step := s.AngleDegrees * math.Pi / 180
	pt := r.Mid()
	p.MoveTo(pt)
	var angle float64
	for _, turn := range dragonTurns(steps) {
		if turn == 'R' {
			angle += step
		} else {
			angle -= step
		}
		pt = pt.OffsetPolar(1, angle)
		p.LineTo(pt)
	}
	return RecenterAndScale(p, r, FitUniform)
}

// Spirolateral walks a turtle: each step turns by 180° - TurningAngle
// and moves forward. With a single entry in Turns the steps have lengths
// 1..Turns[0], and steps whose length is listed in ReversedIndexes turn
// the other way. With several entries each is a step length, negative
// entries turning the other way. The walk is repeated Repetitions times
// and stretched to fill the frame.
type Spirolateral struct {
	Turns           []int
	TurningAngle    float64
	Repetitions     int
	ReversedIndexes []int
}

// NewSpirolateral returns a spirolateral of n increasing steps.
func NewSpirolateral(n int, turningAngle float64, repetitions int) Spirolateral {
	return Spirolateral{Turns: []int{n}, TurningAngle: turningAngle, Repetitions: repetitions}
}

// maxSpirolateralSteps bounds the steps walked over all repetitions.
const maxSpirolateralSteps = 1 << 16

// steps returns the signed step lengths of one repetition.
func (s Spirolateral) steps() []int {
	if len(s.Turns) != 1 {
		return s.Turns[:min(len(s.Turns), maxSpirolateralSteps)]
	}
	n := min(absInt(s.Turns[0]), maxSpirolateralSteps)
	out := make([]int, n)
	for i := range out {
		m := i + 1
		if slices.Contains(s.ReversedIndexes, m) {
			m = -m
		}
		out[i] = m
	}
	return out
}

// Path walks at most 65536 steps over all repetitions.
func (s Spirolateral) Path(r Rect) *Path {
	p := NewPath()
	if r.IsNull() {
		return p
	}
	delta := (180 - s.TurningAngle) * math.Pi / 180
	steps := s.steps()

	reps := absInt(s.Repetitions)
	if len(steps) > 0 && reps > maxSpirolateralSteps/len(steps) {
		reps = maxSpirolateralSteps / len(steps)
	}
	if len(s.Turns) == 1 && absInt(s.Turns[0]) > maxSpirolateralSteps ||
		len(s.Turns) > maxSpirolateralSteps || reps != absInt(s.Repetitions) {
		Logger().Debug("spirolateral steps clamped",
			slog.Int("steps", len(steps)), slog.Int("repetitions", reps))
	}

	pt := r.Mid()
	p.MoveTo(pt)
	var angle float64
	for range reps {
		for _, st := range steps {
			if st < 0 {
				angle -= delta
			} else {
				angle += delta
			}
			pt = pt.OffsetPolar(float64(absInt(st)), angle)
			p.LineTo(pt)
		}
	}
	return RecenterAndScale(p, r, FitStretch)
}

// AnimatableData returns the repetitions and turning angle.
func (s Spirolateral) AnimatableData() Pair[Scalar, Scalar] {
	return MakePair(Scalar(s.Repetitions), Scalar(s.TurningAngle))
}

func (s Spirolateral) WithAnimatableData(d Pair[Scalar, Scalar]) Shape {
	s.Repetitions = int(d.First)
	s.TurningAngle = float64(d.Second)
	return s
}
