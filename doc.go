// Package shapes provides declarative 2D vector-shape generators.
//
// # Overview
//
// Every generator answers one question: given a bounding rectangle, which
// path renders the shape? A [Shape] exposes Path(Rect) and returns a fresh
// [Path] built from move, line, quadratic, cubic and close commands. Hosts
// rasterize, stroke, fill or hit-test that path; the package itself never
// draws.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	frame := shapes.NewRect(0, 0, 256, 256)
//	star := shapes.StarPolygon{Points: 5, Density: 2}
//	p := star.Path(frame)
//
//	// Compose with Boolean operations.
//	ring := shapes.Subtract(shapes.Circle{}.Path(frame),
//	    shapes.InsetBy(shapes.Circle{}, 32).Path(frame))
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Point, Size, Rect, EdgeInsets, Matrix
//   - Path: elements, builders, queries, transforms, Boolean operations
//   - Kernel: regular, isotoxal and star polygon vertices
//   - Strokes: StrokeStyle, dashing, dash normalization, outlines
//   - Composition: inset, invert, skew, tile, circle pattern, alignment
//   - Catalog: polygons, curves, closed-form constructions and patterns
//   - Animation: VectorArithmetic values for parameter interpolation
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing angles turn clockwise on screen
//
// # Degenerate Input
//
// No generator returns an error. Counts are coerced to their absolute value,
// ratios are clamped, and impossible geometry yields an empty path. Insets
// that consume a frame produce [NullRect], which composition code treats as
// "render nothing".
package shapes
