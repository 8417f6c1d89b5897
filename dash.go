package shapes

import "math"

// dashCycle cleans a dash array: entries become absolute values and an
// odd-length array is repeated once. It returns nil when the array draws
// a solid line.
func dashCycle(dash []float64) []float64 {
	var sum float64
	out := make([]float64, 0, 2*len(dash))
	for _, d := range dash {
		d = math.Abs(d)
		if !isFinite(d) {
			return nil
		}
		sum += d
		out = append(out, d)
	}
	if sum == 0 {
		return nil
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	return out
}

// Dashed splits p into the dash subpaths of pattern dash, measured along
// the flattened arc length and starting phase units into the pattern.
// An empty or all-zero array returns a copy of p.
func Dashed(p *Path, dash []float64, phase float64, opts ...StrokeOption) *Path {
	cycle := dashCycle(dash)
	if cycle == nil || p.IsEmpty() {
		return p.Clone()
	}
	o := resolveStrokeOptions(opts)

	var period float64
	for _, d := range cycle {
		period += d
	}
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}

	out := NewPath()
	for _, pl := range p.Flatten(o.tolerance) {
		dashPolyline(out, pl, cycle, phase)
	}
	return out
}

// dashPolyline emits the "on" intervals of one polyline. The pattern
// restarts at every subpath.
func dashPolyline(out *Path, pl Polyline, cycle []float64, phase float64) {
	pts := pl.Points
	if pl.Closed && len(pts) > 1 {
		pts = append(append([]Point(nil), pts...), pts[0])
	}

	// Locate the phase inside the cycle.
	idx := 0
	remaining := cycle[0]
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		idx = (idx + 1) % len(cycle)
		remaining = cycle[idx]
	}
	on := idx%2 == 0
	drawing := false

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := a.Distance(b)
		t := 0.0
		for seg-t > 0 {
			step := math.Min(remaining, seg-t)
			if on {
				if !drawing {
					out.MoveTo(a.Lerp(b, t/seg))
					drawing = true
				}
				out.LineTo(a.Lerp(b, (t+step)/seg))
			}
			t += step
			remaining -= step
			if remaining <= 0 {
				idx = (idx + 1) % len(cycle)
				remaining = cycle[idx]
				on = idx%2 == 0
				drawing = false
			}
		}
	}
}
