package shapes

import (
	"math"
	"testing"
)

func TestCatalog_NullFrameIsEmpty(t *testing.T) {
	shapes := map[string]Shape{
		"Bullet":                  Bullet{Taper: 10},
		"TaperedRectangle":        TaperedRectangle{Taper: 10},
		"Kite":                    Kite{PointRatio: 0.3},
		"Diamond":                 Diamond{},
		"RightKite":               RightKite{PointRatio: 0.3},
		"Trapezoid":               Trapezoid{Pct1: 0.2, Pct2: 0.8},
		"Parallelogram":           Parallelogram{Pct: 0.2},
		"IsoscelesTriangle":       IsoscelesTriangle{},
		"RightTriangle":           RightTriangle{},
		"CutCornerRectangle":      CutCornerRectangle{Corners: map[Corner]float64{CornerTopLeft: 5}},
		"Heart":                   Heart{},
		"Lens":                    Lens{},
		"Crescent":                Crescent{},
		"Teardrop":                Teardrop{Variation: 0.5},
		"DoubleTeardrop":          DoubleTeardrop{},
		"Salinon":                 NewSalinon(),
		"Arbelos":                 NewArbelos(),
		"Lune":                    NewLune(),
		"CircleSector":            CircleSector{End: 1},
		"Arrowhead":               NewArrowhead(),
		"RoundedCornerRectangle":  RoundedCornerRectangle{CornerRadius: 4, Corners: AllCorners},
		"InvertedCornerRectangle": InvertedCornerRectangle{CornerRadius: 4},
		"QuadCorner":              QuadCorner{CornerRadius: 4},
		"Line":                    HorizontalLine(),
		"OgeeCurve":               OgeeCurve{ControlX: 0.5},
		"SCurve":                  SCurve{},
		"Triquetra":               Triquetra{},
		"Check":                   Check{Rows: 2, Columns: 2},
		"Hatching":                NewHatching(8),
		"BenDayDot":               NewBenDayDot(),
		"Halftone":                NewHalftone(),
		"AnnularSteinerChain":     NewAnnularSteinerChain(),
		"DataPath":                DataPath{Data: []float64{1, 2}},
		"Bar":                     Bar{Style: DefaultStrokeStyle()},
		"Ring":                    Ring{Style: DefaultStrokeStyle()},
		"BorderedRectangle":       BorderedRectangle{Style: DefaultStrokeStyle()},
		"BorderedPolygon":         BorderedPolygon{Sides: 5, Style: DefaultStrokeStyle()},
		"StrokeStyledCircle":      NewStrokeStyledCircle(),
		"StrokeStyledPolygon":     NewStrokeStyledPolygon(5, 10),
		"StrokeStyledRectangle":   NewStrokeStyledRectangle(),
	}
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			if p := s.Path(NullRect); !p.IsEmpty() {
				t.Errorf("Path(NullRect) = %v", p)
			}
			if p := s.Path(frame256); p.IsEmpty() {
				t.Error("Path(frame256) is empty")
			}
		})
	}
}

func TestCatalog_PolygonVertices(t *testing.T) {
	tests := []struct {
		name  string
		shape Polygon
		frame Rect
		want  []Point
	}{
		{"bullet", Bullet{Taper: 20}, NewRect(0, 0, 80, 40),
			[]Point{{0, 0}, {60, 0}, {80, 20}, {60, 40}, {0, 40}}},
		{"bullet taper capped", Bullet{Taper: -100}, NewRect(0, 0, 80, 40),
			[]Point{{0, 0}, {40, 0}, {80, 20}, {40, 40}, {0, 40}}},
		{"tapered rectangle", TaperedRectangle{Taper: 10}, NewRect(0, 0, 80, 40),
			[]Point{{0, 20}, {10, 0}, {70, 0}, {80, 20}, {70, 40}, {10, 40}}},
		{"kite", Kite{PointRatio: 0.25}, NewRect(0, 0, 100, 100),
			[]Point{{50, 0}, {100, 25}, {50, 100}, {0, 25}}},
		{"diamond", Diamond{}, NewRect(10, 10, 100, 100),
			[]Point{{60, 10}, {110, 60}, {60, 110}, {10, 60}}},
		{"trapezoid", Trapezoid{Pct1: 0.8, Pct2: 0.2}, NewRect(0, 0, 100, 50),
			[]Point{{0, 50}, {20, 0}, {80, 0}, {100, 50}}},
		{"parallelogram", Parallelogram{Pct: 0.25}, NewRect(0, 0, 100, 100),
			[]Point{{0, 100}, {25, 0}, {100, 0}, {75, 100}}},
		{"isosceles", IsoscelesTriangle{}, NewRect(0, 0, 100, 50),
			[]Point{{50, 0}, {100, 50}, {0, 50}}},
		{"right triangle", RightTriangle{}, NewRect(0, 0, 100, 50),
			[]Point{{100, 0}, {100, 50}, {0, 50}}},
		{"cut corner", CutCornerRectangle{Corners: map[Corner]float64{CornerTopLeft: 10, CornerBottomRight: -5}},
			NewRect(0, 0, 100, 50),
			[]Point{{0, 10}, {10, 0}, {100, 0}, {100, 0}, {100, 45}, {95, 50}, {0, 50}, {0, 50}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.shape.Vertices(tt.frame), approx)
			if area := tt.shape.Path(tt.frame).Area(); area <= 0 {
				t.Errorf("Area = %v, want positive", area)
			}
		})
	}
}

func TestRightKite(t *testing.T) {
	for _, ratio := range []float64{0.2, 0.5, 0.8} {
		vs := RightKite{PointRatio: ratio}.Vertices(frame256)
		for _, v := range vs {
			if d := v.Distance(frame256.Mid()); math.Abs(d-128) > 1e-9 {
				t.Errorf("ratio %v: vertex %v off the inscribed circle", ratio, v)
			}
		}
		for _, side := range []int{1, 3} {
			a, b := vs[(side+3)%4].Sub(vs[side]), vs[(side+1)%4].Sub(vs[side])
			if dot := a.Dot(b); math.Abs(dot) > 1e-6 {
				t.Errorf("ratio %v: angle at vertex %d is not right (dot %v)", ratio, side, dot)
			}
		}
	}
}

func TestCurvedShapes_Areas(t *testing.T) {
	const r = 128.0
	tests := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"lens", Lens{}, 256 * 256 / 3.0},
		{"collapsed lens", Lens{ControlRatio: 0.5}, 0},
		{"arbelos", NewArbelos(), math.Pi / 2 * (r*r - 44.8*44.8 - 83.2*83.2)},
		{"quarter sector", CircleSector{Start: 0, End: math.Pi / 2, Clockwise: true}, math.Pi * r * r / 4},
		{"three-quarter sector", CircleSector{Start: 0, End: math.Pi / 2}, math.Pi * r * r * 3 / 4},
		{"rounded corners", RoundedCornerRectangle{CornerRadius: 20, Corners: AllCorners}, 256*256 - 4*400*(1-math.Pi/4)},
		{"square corners", RoundedCornerRectangle{CornerRadius: 20}, 256 * 256},
		{"capped radius", RoundedCornerRectangle{CornerRadius: 1000, Corners: AllCorners}, math.Pi * r * r},
		{"inverted corners", InvertedCornerRectangle{CornerRadius: 20}, 256*256 - math.Pi*400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := math.Abs(tt.shape.Path(frame256).Area())
			if math.Abs(got-tt.want) > math.Max(1, tt.want*1e-3) {
				t.Errorf("|Area| = %v, want ≈ %v", got, tt.want)
			}
		})
	}
}

func TestCurvedShapes_Regions(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		inside  []Point
		outside []Point
	}{
		{"heart", Heart{}, []Point{{128, 128}}, []Point{{5, 250}, {251, 250}}},
		{"double teardrop", DoubleTeardrop{}, []Point{{2, 2}, {254, 254}}, []Point{{254, 2}, {2, 254}}},
		{"lune", NewLune(), []Point{{250, 128}}, []Point{{128, 128}, {5, 128}}},
		{"quarter sector", CircleSector{End: math.Pi / 2, Clockwise: true}, []Point{{160, 160}}, []Point{{100, 100}, {160, 100}}},
		{"teardrop", Teardrop{Variation: 0.5}, []Point{{128, 10}, {128, 250}}, []Point{{10, 10}, {246, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.shape.Path(frame256)
			for _, pt := range tt.inside {
				if !p.Contains(pt, NonZero) {
					t.Errorf("%v is outside", pt)
				}
			}
			for _, pt := range tt.outside {
				if p.Contains(pt, NonZero) {
					t.Errorf("%v is inside", pt)
				}
			}
		})
	}
}

func TestCurvedShapes_FollowFrameOrigin(t *testing.T) {
	frame := NewRect(100, 200, 256, 256)
	for name, s := range map[string]Shape{
		"arrowhead": NewArrowhead(),
		"teardrop":  Teardrop{Variation: 0.3},
		"heart":     Heart{},
		"datapath":  DataPath{Data: []float64{1, -1, 0.5}},
	} {
		t.Run(name, func(t *testing.T) {
			a := s.Path(frame256).BoundingBox()
			b := s.Path(frame).BoundingBox()
			diff(t, a.Offset(100, 200), b, cmpApprox(1e-9))
		})
	}
}

func TestTeardrop_VariationClamped(t *testing.T) {
	if !(Teardrop{Variation: -1}).Path(frame256).Equal(Teardrop{}.Path(frame256)) {
		t.Error("negative variation is not clamped to 0")
	}
	if !(Teardrop{Variation: 3}).Path(frame256).Equal(Teardrop{Variation: 1}.Path(frame256)) {
		t.Error("variation above 1 is not clamped")
	}
}

func TestSalinon(t *testing.T) {
	plain := NewSalinon().Path(frame256).BoundingBox()
	diff(t, NewRect(0, 0, 256, 128+25.6), plain, cmpApprox(1e-6))

	s := NewSalinon()
	s.Centered = true
	centered := s.Path(frame256).BoundingBox()
	diff(t, frame256.Mid(), centered.Mid(), cmpApprox(1e-6))
	if math.Abs(centered.Width()-256) > 1e-6 {
		t.Errorf("centered width = %v, want 256", centered.Width())
	}
}

func TestOpenShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{"horizontal", HorizontalLine(), "M 0 128 L 256 128"},
		{"vertical", VerticalLine(), "M 128 0 L 128 256"},
		{"unbounded line", Line{Start: Pt(-1, 0), End: Pt(2, 1)}, "M -256 0 L 512 256"},
		{"bounded line", Line{Start: Pt(-1, 0), End: Pt(2, 1), BoundToFrame: true}, "M 0 0 L 256 256"},
		{"s-curve", SCurve{Control1: Pt(0, 0.5), Control2: Pt(1, 0.5), Reverse: true}, "M 0 0 Q 0 128 128 128 Q 256 128 256 256"},
		{"quad corner", QuadCorner{CornerRadius: 20},
			"M 0 20 L 0 0 L 20 0 M 236 0 L 256 0 L 256 20 M 256 236 L 256 256 L 236 256 M 20 256 L 0 256 L 0 236"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Path(frame256).String(); got != tt.want {
				t.Errorf("Path = %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestOgeeCurve(t *testing.T) {
	for _, kind := range []OgeeType{CymaRecta, CymaReversa} {
		p := OgeeCurve{ControlX: 0.7, Type: kind}.Path(frame256)
		start := p.Elements()[0].(MoveTo).Point
		end, _ := p.CurrentPoint()
		if start != Pt(0, 256) || end != Pt(256, 0) {
			t.Errorf("kind %d runs %v to %v", kind, start, end)
		}
	}
}

func TestTriquetra(t *testing.T) {
	p := Triquetra{}.Path(frame256)
	if n := countSubpaths(p); n != 3 {
		t.Errorf("%d leaves, want 3", n)
	}
	box := p.BoundingBox()
	if got := math.Max(box.Width(), box.Height()); math.Abs(got-256) > 1e-6 {
		t.Errorf("longest side = %v, want 256", got)
	}
	diff(t, frame256.Mid(), box.Mid(), cmpApprox(1e-6))
}
