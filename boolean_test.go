package shapes

import (
	"math"
	"testing"
)

func TestBoolean_EmptyOperands(t *testing.T) {
	a := rectPath(NewRect(0, 0, 10, 10))
	empty := NewPath()

	tests := []struct {
		name string
		got  *Path
		want *Path
	}{
		{"union empty left", Union(empty, a), a},
		{"union empty right", Union(a, empty), a},
		{"union both empty", Union(empty, nil), empty},
		{"subtract from empty", Subtract(empty, a), empty},
		{"subtract empty", Subtract(a, empty), a},
		{"intersect empty", Intersect(a, empty), empty},
		{"xor empty", Xor(empty, a), a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestBoolean_EmptyOperandIsCopied(t *testing.T) {
	a := rectPath(NewRect(0, 0, 10, 10))
	u := Union(a, nil)
	u.AddRect(NewRect(20, 20, 1, 1))
	if a.Len() != 5 {
		t.Errorf("modifying the union changed its operand: %v", a)
	}
}

func TestBoolean_Areas(t *testing.T) {
	a := rectPath(NewRect(0, 0, 10, 10))
	b := rectPath(NewRect(5, 5, 10, 10))

	tests := []struct {
		name string
		got  *Path
		want float64
	}{
		{"union", Union(a, b), 175},
		{"subtract", Subtract(a, b), 75},
		{"intersect", Intersect(a, b), 25},
		{"xor", Xor(a, b), 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Area(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoolean_SubtractMakesHole(t *testing.T) {
	outer := rectPath(NewRect(0, 0, 10, 10))
	inner := rectPath(NewRect(3, 3, 4, 4))
	got := Subtract(outer, inner)

	if area := got.Area(); math.Abs(area-84) > 1e-6 {
		t.Errorf("Area = %v, want 84", area)
	}
	for _, rule := range []FillRule{NonZero, EvenOdd} {
		if got.Contains(Pt(5, 5), rule) {
			t.Errorf("%v: hole is filled", rule)
		}
		if !got.Contains(Pt(1, 1), rule) {
			t.Errorf("%v: ring is empty", rule)
		}
	}
}

func TestBoolean_CurvedOperands(t *testing.T) {
	a := Circle{}.Path(NewRect(0, 0, 100, 100))
	b := Circle{}.Path(NewRect(50, 0, 100, 100))

	u := Union(a, b, WithTolerance(0.01))
	for _, pt := range []Point{{25, 50}, {75, 50}, {125, 50}} {
		if !u.Contains(pt, NonZero) {
			t.Errorf("union misses %v", pt)
		}
	}
	lens := Intersect(a, b)
	if !lens.Contains(Pt(75, 50), NonZero) || lens.Contains(Pt(25, 50), NonZero) {
		t.Error("intersection is not the lens between the circles")
	}
	diff(t, NewRect(50, 50-math.Sqrt(50*50-25*25), 50, 2*math.Sqrt(50*50-25*25)),
		lens.BoundingBox(), cmpApprox(0.1))
}

func TestNormalize(t *testing.T) {
	p := rectPath(NewRect(0, 0, 10, 10))
	p.AddRect(NewRect(5, 5, 10, 10))

	nonZero := Normalize(p, NonZero)
	if got := nonZero.Area(); math.Abs(got-175) > 1e-6 {
		t.Errorf("NonZero Area = %v, want 175", got)
	}
	evenOdd := Normalize(p, EvenOdd)
	if got := evenOdd.Area(); math.Abs(got-150) > 1e-6 {
		t.Errorf("EvenOdd Area = %v, want 150", got)
	}
	if evenOdd.Contains(Pt(7, 7), NonZero) {
		t.Error("EvenOdd overlap survives normalization")
	}
	if !Normalize(nil, NonZero).IsEmpty() {
		t.Error("normalizing nothing yields contours")
	}
}

func TestNormalize_NestedSameDirection(t *testing.T) {
	// Under NonZero a nested contour running the same way fills; under
	// EvenOdd it is a hole.
	p := rectPath(NewRect(0, 0, 10, 10))
	p.AddRect(NewRect(3, 3, 4, 4))

	if got := Normalize(p, NonZero).Area(); math.Abs(got-100) > 1e-6 {
		t.Errorf("NonZero Area = %v, want 100", got)
	}
	if got := Normalize(p, EvenOdd).Area(); math.Abs(got-84) > 1e-6 {
		t.Errorf("EvenOdd Area = %v, want 84", got)
	}
}
