package shapes

import (
	"math"
	"testing"
)

func TestPerimeters(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"rectangle", RectanglePerimeter(NewRect(0, 0, 10, 20)), 60},
		{"circle", CirclePerimeter(-2), 2 * math.Pi},
		{"square in circle", PolygonPerimeter(4, 2), 4 * math.Sqrt2},
		{"no sides", PolygonPerimeter(0, 2), 0},
		{"negative sides", PolygonPerimeter(-6, 2), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > epsilon {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNormalizeDash(t *testing.T) {
	tests := []struct {
		name      string
		perimeter float64
		dash      []float64
		phase     float64
		count     float64
		segments  int
		want      DashPattern
	}{
		{"stretch", 100, []float64{1, 1}, 1, 5, 0, DashPattern{Dash: []float64{10, 10}, Phase: 10}},
		{"negative count", 100, []float64{1, 1}, 0, -5, 0, DashPattern{Dash: []float64{10, 10}}},
		{"odd dash odd segments", 90, []float64{1}, 0, 3, 3, DashPattern{Dash: []float64{15, 15}}},
		{"odd dash even segments", 90, []float64{1}, 0, 3, 2, DashPattern{Dash: []float64{30}}},
		{"zero count", 100, []float64{1, 2}, 0.5, 0, 0, DashPattern{Dash: []float64{1, 2}, Phase: 0.5}},
		{"all zero", 100, []float64{0, 0}, 0.5, 4, 4, DashPattern{Dash: []float64{0, 0}, Phase: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDash(tt.perimeter, tt.dash, tt.phase, tt.count, tt.segments)
			diff(t, tt.want, got, approx)
		})
	}
}

func TestNormalizeDash_CyclesCoverPerimeter(t *testing.T) {
	for _, count := range []float64{1, 3, 7.5} {
		dp := NormalizeDash(123, []float64{3, 1, 2, 5}, 0, count, 0)
		var sum float64
		for _, d := range dp.Dash {
			sum += d
		}
		if math.Abs(sum*count-123) > 1e-9 {
			t.Errorf("count %v: %v cycles of %v do not cover 123", count, count, sum)
		}
	}
}

func TestNormalizeDash_DoesNotAliasInput(t *testing.T) {
	dash := []float64{1, 1}
	dp := NormalizeDash(10, dash, 0, 0, 0)
	dp.Dash[0] = 5
	if dash[0] != 1 {
		t.Error("NormalizeDash returned its input slice")
	}
}

func TestStrokePattern_Applied(t *testing.T) {
	sp := StrokePattern{
		Style:       DefaultStrokeStyle().WithWidth(3).WithDash([]float64{2, 1}, 0),
		RepeatCount: 4,
	}
	got := sp.Applied(120)
	diff(t, []float64{20, 10}, got.Dash, approx)
	if got.Width != 3 {
		t.Errorf("Width = %v, want 3", got.Width)
	}
	diff(t, []float64{2, 1}, sp.Style.Dash)
}
