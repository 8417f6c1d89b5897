package shapes

// DefaultTolerance is the maximum distance between a curve and the
// polyline that replaces it when a path is flattened for Boolean
// operations, dashing or stroking.
const DefaultTolerance = 0.05

// BooleanOption configures Union, Subtract, Intersect, Xor and Normalize.
//
// Example:
//
//	shapes.Union(a, b, shapes.WithTolerance(0.01))
type BooleanOption func(*booleanOptions)

type booleanOptions struct {
	tolerance float64
}

func defaultBooleanOptions() booleanOptions {
	return booleanOptions{tolerance: DefaultTolerance}
}

func resolveBooleanOptions(opts []BooleanOption) booleanOptions {
	o := defaultBooleanOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the flattening tolerance used before clipping.
// Non-positive values keep the default.
func WithTolerance(t float64) BooleanOption {
	return func(o *booleanOptions) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

// StrokeOption configures StrokedPath and Dashed.
type StrokeOption func(*strokeOptions)

type strokeOptions struct {
	tolerance float64
}

func resolveStrokeOptions(opts []StrokeOption) strokeOptions {
	o := strokeOptions{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrokeTolerance sets the flattening tolerance used while dashing
// and expanding strokes. Non-positive values keep the default.
func WithStrokeTolerance(t float64) StrokeOption {
	return func(o *strokeOptions) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

// RasterOption configures Rasterize and Coverage.
type RasterOption func(*rasterOptions)

type rasterOptions struct {
	transform Matrix
}

func resolveRasterOptions(opts []RasterOption) rasterOptions {
	o := rasterOptions{transform: Identity()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRasterTransform applies m to the path before it is rasterized.
//
// Example:
//
//	// Render a 256-unit shape into a 64-pixel mask.
//	mask := shapes.Rasterize(p, 64, 64, shapes.WithRasterTransform(shapes.Scale(0.25, 0.25)))
func WithRasterTransform(m Matrix) RasterOption {
	return func(o *rasterOptions) {
		o.transform = m
	}
}
