package shapes

import "math"

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0. A
// vanishing leading coefficient degrades to the linear case.
func SolveQuadratic(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps*math.Max(math.Abs(b), math.Abs(c)) || a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}

	// Citardauq form avoids cancellation when b² ≫ 4ac.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r0, r1 := q/a, c/q
	if q == 0 {
		r1 = -r0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return []float64{r0, r1}
}

// SolveQuadraticInUnitInterval returns the roots that lie strictly
// inside (0, 1).
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	var out []float64
	for _, r := range SolveQuadratic(a, b, c) {
		if isFinite(r) && r > 0 && r < 1 {
			out = append(out, r)
		}
	}
	return out
}
