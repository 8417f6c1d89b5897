package shapes

import "math"

// RectanglePerimeter returns 2(w+h).
func RectanglePerimeter(r Rect) float64 {
	return 2 * (r.Width() + r.Height())
}

// CirclePerimeter returns the circumference of a circle of diameter d.
func CirclePerimeter(diameter float64) float64 {
	return math.Pi * math.Abs(diameter)
}

// PolygonPerimeter returns the perimeter of a regular polygon inscribed
// in a circle of the given diameter.
func PolygonPerimeter(sides int, diameter float64) float64 {
	n := float64(absInt(sides))
	if n == 0 {
		return 0
	}
	return n * math.Abs(diameter) * math.Sin(math.Pi/n)
}

// DashPattern is a dash array and its starting phase.
type DashPattern struct {
	Dash  []float64
	Phase float64
}

// NormalizeDash rescales dash and phase so that |repeatCount| cycles of
// the pattern cover perimeter exactly. An odd-length dash array used with
// an odd number of segments is doubled first so dashes and gaps keep
// alternating around a closed outline. A zero repeat count or an
// all-zero array returns the input unchanged.
func NormalizeDash(perimeter float64, dash []float64, phase, repeatCount float64, segments int) DashPattern {
	d := append([]float64(nil), dash...)
	count := math.Abs(repeatCount)
	if count == 0 {
		return DashPattern{Dash: d, Phase: phase}
	}

	if len(d)%2 == 1 && absInt(segments)%2 == 1 {
		d = append(d, d...)
	}
	var sum float64
	for _, v := range d {
		sum += v
	}
	if sum == 0 || !isFinite(sum) {
		return DashPattern{Dash: append([]float64(nil), dash...), Phase: phase}
	}

	factor := perimeter / (sum * count)
	for i := range d {
		d[i] *= factor
	}
	return DashPattern{Dash: d, Phase: phase * factor}
}

// StrokePattern is a stroke style whose dash array is stretched to repeat
// a whole number of times around an outline.
type StrokePattern struct {
	Style StrokeStyle
	// RepeatCount is how many dash cycles fit the perimeter. Zero keeps
	// the dash lengths as given.
	RepeatCount float64
}

// Applied returns the style with its dash normalized to perimeter.
func (sp StrokePattern) Applied(perimeter float64) StrokeStyle {
	segments := int(math.Round(math.Abs(sp.RepeatCount)))
	dp := NormalizeDash(perimeter, sp.Style.Dash, sp.Style.DashPhase, sp.RepeatCount, segments)
	return sp.Style.WithDash(dp.Dash, dp.Phase)
}
