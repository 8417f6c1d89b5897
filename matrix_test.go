package shapes

import (
	"math"
	"testing"
)

func TestMatrix_IsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"translation", Translate(10, 20), false},
		{"rotation", Rotate(math.Pi / 4), false},
		{"skew", Skew(0.5, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(10, -5)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"skew about", SkewAbout(0.3, -0.2, Pt(4, 9))},
		{"composed", Scale(3, 1).Then(Rotate(1)).Then(Translate(7, 7))},
	}
	pts := []Point{{0, 0}, {1, 0}, {-3, 12.5}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			for _, p := range pts {
				got := inv.TransformPoint(tt.m.TransformPoint(p))
				if !pointsEqual(got, p, 1e-9) {
					t.Errorf("round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of a singular matrix = %+v, want identity", got)
	}
}

func TestMatrix_TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 3))
	got := m.TransformVector(Pt(1, 1))
	if !pointsEqual(got, Pt(2, 3), 1e-12) {
		t.Errorf("TransformVector = %v, want (2, 3)", got)
	}
}
