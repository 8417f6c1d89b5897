package shapes

import (
	"math"
	"testing"
)

func TestPath_CommandsOnEmptyPath(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Fatalf("Close on an empty path added %v", p)
	}
	if _, ok := p.CurrentPoint(); ok {
		t.Error("empty path reports a current point")
	}

	p.LineTo(Pt(3, 4))
	if got := p.String(); got != "M 3 4" {
		t.Errorf("LineTo without current point = %q, want a move", got)
	}
}

func TestPath_String(t *testing.T) {
	p := BuildPath().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(10, 0)).
		QuadTo(Pt(10, 5), Pt(5, 5)).
		CubicTo(Pt(4, 5), Pt(1, 2), Pt(0.5, 0.25)).
		Close().
		Build()
	want := "M 0 0 L 10 0 Q 10 5 5 5 C 4 5 1 2 0.5 0.25 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPath_CloseTwice(t *testing.T) {
	p := NewPath()
	p.AddPolygon([]Point{{0, 0}, {1, 0}, {1, 1}})
	n := p.Len()
	p.Close()
	if p.Len() != n {
		t.Errorf("second Close added a command: %v", p)
	}
	if cp, _ := p.CurrentPoint(); cp != Pt(0, 0) {
		t.Errorf("current point after Close = %v, want subpath start", cp)
	}
}

func TestPath_AddRectIsClockwise(t *testing.T) {
	p := NewPath()
	p.AddRect(NewRect(0, 0, 10, 20))
	if got := p.Area(); math.Abs(got-200) > epsilon {
		t.Errorf("Area = %v, want 200", got)
	}

	p.AddRect(NullRect)
	if p.Len() != 5 {
		t.Errorf("null rect added commands: %v", p)
	}
}

func TestPath_AddEllipse(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	p := NewPath()
	p.AddEllipse(r)

	diff(t, r, p.BoundingBox(), approx)
	want := math.Pi * 50 * 25
	if got := p.Area(); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("Area = %v, want ≈ %v", got, want)
	}
}

func TestPath_Arc(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		clockwise  bool
		wantEnd    Point
		wantSweep  float64
	}{
		{"quarter clockwise", 0, math.Pi / 2, true, Pt(0, 10), math.Pi / 2},
		{"quarter counterclockwise", 0, math.Pi / 2, false, Pt(0, 10), 3 * math.Pi / 2},
		{"wraps clockwise", math.Pi / 2, 0, true, Pt(10, 0), 3 * math.Pi / 2},
		{"many turns clockwise", 0, -9.5 * math.Pi, true, Pt(0, 10), math.Pi / 2},
		{"many turns counterclockwise", 0, 10.5 * math.Pi, false, Pt(0, 10), 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.Arc(Point{}, 10, tt.start, tt.end, tt.clockwise)

			first := p.Elements()[0].(MoveTo).Point
			if !pointsEqual(first, Point{}.OffsetPolar(10, tt.start), epsilon) {
				t.Errorf("arc starts at %v", first)
			}
			end, _ := p.CurrentPoint()
			if !pointsEqual(end, tt.wantEnd, epsilon) {
				t.Errorf("arc ends at %v, want %v", end, tt.wantEnd)
			}
			if got, want := p.Length(1e-4), 10*tt.wantSweep; math.Abs(got-want) > 0.05 {
				t.Errorf("arc length = %v, want %v", got, want)
			}
		})
	}
}

func TestPath_ArcConnectsWithLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.Arc(Pt(20, 0), 5, math.Pi, 2*math.Pi, true)

	if _, ok := p.Elements()[1].(LineTo); !ok {
		t.Fatalf("second command = %T, want LineTo", p.Elements()[1])
	}
	if got := p.Elements()[1].(LineTo).Point; !pointsEqual(got, Pt(15, 0), epsilon) {
		t.Errorf("line ends at %v, want arc start (15, 0)", got)
	}
}

func TestPath_ArcHugeSweep(t *testing.T) {
	sector := CircleSector{End: -1e18, Clockwise: true}.Path(NewRect(0, 0, 100, 100))
	if n := sector.Len(); n > 8 {
		t.Errorf("sector has %d commands, want at most a full turn", n)
	}
	box := sector.BoundingBox()
	if box.IsNull() || box.MinX() < -1e-9 || box.MaxX() > 100+1e-9 {
		t.Errorf("sector bounds %v", box)
	}

	p := NewPath()
	p.RelativeArc(Pt(0, 0), 10, 0, 1e18)
	if n := p.Len(); n != 5 {
		t.Errorf("huge sweep drew %d commands, want a move and four quarter cubics", n)
	}
}

func TestPath_ArcNonFinite(t *testing.T) {
	for _, tt := range []struct {
		name                 string
		radius, start, delta float64
	}{
		{"delta", 10, 0, math.Inf(1)},
		{"start", 10, math.NaN(), 1},
		{"radius", math.Inf(-1), 0, 1},
	} {
		p := NewPath()
		p.RelativeArc(Point{}, tt.radius, tt.start, tt.delta)
		if !p.IsEmpty() {
			t.Errorf("%s: got %q, want empty", tt.name, p.String())
		}
	}

	p := NewPath()
	p.Arc(Point{}, 10, 0, math.Inf(-1), true)
	if !p.IsEmpty() {
		t.Errorf("infinite end angle drew %q", p.String())
	}
}

func TestPath_FullCircleArea(t *testing.T) {
	p := NewPath()
	p.RelativeArc(Pt(50, 50), 40, 0, 2*math.Pi)
	p.Close()
	want := math.Pi * 40 * 40
	if got := p.Area(); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("Area = %v, want ≈ %v", got, want)
	}

	p = NewPath()
	p.RelativeArc(Pt(50, 50), 40, 0, -2*math.Pi)
	p.Close()
	if got := p.Area(); got > 0 {
		t.Errorf("negative sweep area = %v, want negative", got)
	}
}

func TestPath_ArcTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.ArcTo(Pt(10, 0), Pt(10, 10), 2)

	if got := p.Elements()[1].(LineTo).Point; !pointsEqual(got, Pt(8, 0), epsilon) {
		t.Errorf("tangent line ends at %v, want (8, 0)", got)
	}
	end, _ := p.CurrentPoint()
	if !pointsEqual(end, Pt(10, 2), epsilon) {
		t.Errorf("arc ends at %v, want (10, 2)", end)
	}

	// Collinear tangents degrade to a line.
	p = NewPath()
	p.MoveTo(Pt(0, 0))
	p.ArcTo(Pt(10, 0), Pt(20, 0), 2)
	if got := p.String(); got != "M 0 0 L 10 0" {
		t.Errorf("collinear ArcTo = %q", got)
	}
}

func TestPath_OgeeCurve(t *testing.T) {
	for _, kind := range []OgeeType{CymaRecta, CymaReversa} {
		p := NewPath()
		p.MoveTo(Pt(0, 100))
		p.AddOgeeCurve(Pt(100, 0), 0.5, kind)

		els := p.Elements()
		if len(els) != 3 {
			t.Fatalf("kind %d: %d commands, want 3", kind, len(els))
		}
		if got := els[1].(QuadTo).Point; got != Pt(50, 50) {
			t.Errorf("kind %d: curve passes %v, want the midpoint", kind, got)
		}
		if got := els[2].(QuadTo).Point; got != Pt(100, 0) {
			t.Errorf("kind %d: curve ends at %v", kind, got)
		}
	}
}

func TestPath_CloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.AddLines([]Point{{0, 0}, {1, 1}})
	c := p.Clone()
	c.LineTo(Pt(2, 2))

	if p.Len() != 2 || c.Len() != 3 {
		t.Errorf("Len = %d/%d, want 2/3", p.Len(), c.Len())
	}
	if p.Equal(c) {
		t.Error("Equal reports modified clone as equal")
	}
	if !NewPath().Equal(nil) {
		t.Error("empty and nil paths differ")
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.AddRect(NewRect(0, 0, 10, 20))

	diff(t, NewRect(5, -5, 10, 20), p.Translate(5, -5).BoundingBox(), approx)
	diff(t, NewRect(-5, 0, 20, 40), p.ScaleAbout(2, 2, Pt(5, 0)).BoundingBox(), approx)
	diff(t, NewRect(-20, 0, 20, 10), p.RotateAbout(math.Pi/2, Point{}).BoundingBox(), approx)
}
