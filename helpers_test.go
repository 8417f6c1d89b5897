package shapes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

// approx compares floats, and structs of floats, to within epsilon.
var approx = cmpopts.EquateApprox(0, epsilon)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// frame256 is the square frame most shape tests draw into.
var frame256 = NewRect(0, 0, 256, 256)

// cmpApprox compares floats to within an absolute margin.
func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}
