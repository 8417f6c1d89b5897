package shapes

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Rasterize fills p into a width×height alpha mask with anti-aliased
// edges. Open subpaths are closed implicitly. Overlapping regions are
// accumulated, so self-overlapping paths fill as with the nonzero rule.
func Rasterize(p *Path, width, height int, opts ...RasterOption) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if p.IsEmpty() || width <= 0 || height <= 0 {
		return dst
	}
	o := resolveRasterOptions(opts)
	if !o.transform.IsIdentity() {
		p = p.Transform(o.transform)
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	open := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(e.Point))
			open = true
		case LineTo:
			z.LineTo(f32(e.Point))
		case QuadTo:
			cx, cy := f32(e.Control)
			x, y := f32(e.Point)
			z.QuadTo(cx, cy, x, y)
		case CubicTo:
			c1x, c1y := f32(e.Control1)
			c2x, c2y := f32(e.Control2)
			x, y := f32(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage returns the mean opacity of p rasterized into a width×height
// mask, in [0, 1].
func Coverage(p *Path, width, height int, opts ...RasterOption) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	mask := Rasterize(p, width, height, opts...)
	var sum uint64
	for _, a := range mask.Pix {
		sum += uint64(a)
	}
	return float64(sum) / float64(255*width*height)
}

func f32(p Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
