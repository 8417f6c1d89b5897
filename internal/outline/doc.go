// Package outline converts stroked polylines into filled contours.
//
// A stroke is expanded by walking two offset polylines, one on each side
// of the centerline at half the line width:
//   - the left side runs forward
//   - the right side runs backward
//   - caps connect the two sides of an open polyline
//   - joins fill the outer corner between consecutive segments
//
// An open polyline produces one contour. A closed polyline produces two:
// the left side and the reversed right side, which together fill a ring
// under the nonzero rule.
//
// Inner corners pass through the centerline vertex, so the contours may
// overlap themselves. Fill them with the nonzero rule.
//
// # Usage
//
//	contours := outline.Expand([]outline.Polyline{{
//	    Points: []outline.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
//	}}, outline.Style{Width: 4, Cap: outline.CapRound, Join: outline.JoinMiter, MiterLimit: 4})
package outline
