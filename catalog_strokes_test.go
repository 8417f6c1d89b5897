package shapes

import (
	"math"
	"testing"
)

func TestBar(t *testing.T) {
	frame := NewRect(0, 0, 256, 100)
	solid := Bar{Style: DefaultStrokeStyle().WithWidth(0.5)}.Path(frame)
	diff(t, NewRect(0, 25, 256, 50), solid.BoundingBox(), approx)

	dashed := Bar{Style: DefaultStrokeStyle().WithWidth(0.1).WithDash([]float64{1, 1}, 0), RepeatCount: 4}.Path(frame)
	if n := countSubpaths(dashed); n != 4 {
		t.Errorf("%d dashes, want 4", n)
	}
	if !dashed.Contains(Pt(16, 50), NonZero) || dashed.Contains(Pt(48, 50), NonZero) {
		t.Error("dashes do not span 32 units each")
	}
}

func TestRing(t *testing.T) {
	p := Ring{Style: DefaultStrokeStyle().WithWidth(10)}.Path(frame256)
	diff(t, frame256, p.BoundingBox(), cmpApprox(0.5))
	if !p.Contains(Pt(5, 128), NonZero) || p.Contains(frame256.Mid(), NonZero) {
		t.Error("ring is not a band along the frame's inscribed circle")
	}
}

func TestBorderedShapes(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(8)
	rect := BorderedRectangle{Style: style}.Path(frame256)
	diff(t, frame256, rect.BoundingBox(), approx)
	if rect.Contains(frame256.Mid(), NonZero) {
		t.Error("bordered rectangle fills its interior")
	}

	poly := BorderedPolygon{Sides: 6, Style: style}.Path(frame256)
	if poly.IsEmpty() || poly.Contains(frame256.Mid(), NonZero) {
		t.Error("bordered polygon is not an outline")
	}
	if !(BorderedPolygon{Style: style}).Path(frame256).IsEmpty() {
		t.Error("polygon without sides draws something")
	}
}

func TestStrokeStyledCircle(t *testing.T) {
	s := NewStrokeStyledCircle()
	p := s.Path(frame256)

	// Twelve dash cycles around a centerline of radius 115.2: the first
	// dash covers 0° to 15°, the first gap 15° to 30°.
	c := frame256.Mid()
	deg := math.Pi / 180
	if !p.Contains(c.OffsetPolar(115.2, 7.5*deg), NonZero) {
		t.Error("first dash is missing")
	}
	if p.Contains(c.OffsetPolar(115.2, 22.5*deg), NonZero) {
		t.Error("first gap is filled")
	}

	s.DashPhaseRatio = 0.5
	shifted := s.Path(frame256)
	if shifted.Contains(c.OffsetPolar(115.2, 7.5*deg), NonZero) {
		t.Error("half-cycle phase did not move the dashes")
	}

	s.DashPattern = nil
	if solid := s.Path(frame256); countSubpaths(solid) != 2 {
		t.Errorf("solid ring has %d contours, want 2", countSubpaths(solid))
	}
}

func TestStrokeStyledPolygonAndRectangle(t *testing.T) {
	for name, s := range map[string]Shape{
		"polygon":   NewStrokeStyledPolygon(5, 10),
		"star":      StrokeStyledPolygon{Sides: 7, Density: 3, Dashes: 20, DashFillRatio: 0.5, LineWidth: LineWidth{Ratio: 0.02}, Join: JoinRound},
		"rectangle": NewStrokeStyledRectangle(),
	} {
		t.Run(name, func(t *testing.T) {
			p := s.Path(frame256)
			if p.IsEmpty() {
				t.Fatal("empty outline")
			}
			// Miter tips may poke out by a fraction of the line width.
			const slack = 3
			box := p.BoundingBox()
			if box.MinX() < -slack || box.MinY() < -slack || box.MaxX() > 256+slack || box.MaxY() > 256+slack {
				t.Errorf("bounds %v leave the frame", box)
			}
		})
	}
}

func TestTrimmedStrokes(t *testing.T) {
	s := NewStrokeStyledRectangle()
	s.Dashes = 0
	s.TrimTo = 0.25
	p := s.Path(frame256)
	box := p.BoundingBox()
	// A quarter of the outline is the top edge.
	if box.Height() > 4 {
		t.Errorf("trimmed outline bounds %v extend past the top edge", box)
	}
}

func TestStrokeStyledShapes_LineWidth(t *testing.T) {
	tests := []struct {
		name   string
		shape  func(LineWidth) Shape
		sample Point
	}{
		{"circle", func(lw LineWidth) Shape {
			s := NewStrokeStyledCircle()
			s.DashPattern, s.LineWidth = nil, lw
			return s
		}, Pt(10, 128)},
		{"polygon", func(lw LineWidth) Shape {
			s := NewStrokeStyledPolygon(4, 0)
			s.LineWidth = lw
			return s
		}, Pt(180.6, 75.4)},
		{"rectangle", func(lw LineWidth) Shape {
			s := NewStrokeStyledRectangle()
			s.Dashes, s.LineWidth = 0, lw
			return s
		}, Pt(10, 128)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wide := tt.shape(LineWidth{Absolute: 20, Ratio: 0.01}).Path(frame256)
			if !wide.Contains(tt.sample, NonZero) {
				t.Errorf("absolute width did not win: %v is not covered", tt.sample)
			}
			thin := tt.shape(LineWidth{Ratio: 0.01}).Path(frame256)
			if thin.Contains(tt.sample, NonZero) {
				t.Errorf("ratio width covers %v", tt.sample)
			}
			if p := tt.shape(LineWidth{Absolute: 300}).Path(frame256); !p.IsEmpty() {
				t.Error("a line wider than the frame draws something")
			}
		})
	}
}
