// Command shapesgallery renders the shape catalog into a PNG contact sheet.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/colornames"

	"github.com/gogpu/shapes"
)

type entry struct {
	name  string
	shape shapes.Shape
}

var palette = []color.RGBA{
	colornames.Crimson,
	colornames.Darkorange,
	colornames.Goldenrod,
	colornames.Seagreen,
	colornames.Teal,
	colornames.Steelblue,
	colornames.Slateblue,
	colornames.Mediumorchid,
}

func catalog() []entry {
	hairline := shapes.DefaultStrokeStyle().WithWidth(2).WithCap(shapes.CapRound)
	dashed := shapes.DefaultStrokeStyle().WithWidth(6).WithDash([]float64{4, 2}, 0)
	stroked := func(s shapes.Shape) shapes.Shape {
		return shapes.StrokeBordered(s, hairline)
	}

	return []entry{
		{"rectangle", shapes.Rectangle{}},
		{"circle", shapes.Circle{}},
		{"hexagon", shapes.RegularPolygon{Sides: 6}},
		{"star", shapes.StarPolygon{Points: 7, Density: 3}},
		{"isotoxal", shapes.IsotoxalPolygon{SidePairs: 5, InnerRadius: 0.5}},
		{"simple polygon", shapes.NewSimplePolygon(0, 0.1, 0.35, 0.5, 0.8)},
		{"rounded polygon", shapes.RoundedPolygon{Sides: 5, CornerRadius: 12}},
		{"torx", shapes.Torx{Sides: 6, ControlPointRatio: 0.2}},
		{"bullet", shapes.Bullet{Taper: 20}},
		{"tapered rectangle", shapes.TaperedRectangle{Taper: 20}},
		{"kite", shapes.Kite{PointRatio: 0.3}},
		{"diamond", shapes.Diamond{}},
		{"right kite", shapes.RightKite{PointRatio: 0.3}},
		{"trapezoid", shapes.Trapezoid{Pct1: 0.2, Pct2: 0.8}},
		{"parallelogram", shapes.Parallelogram{Pct: 0.25}},
		{"isosceles triangle", shapes.IsoscelesTriangle{}},
		{"right triangle", shapes.RightTriangle{}},
		{"cut corners", shapes.CutCornerRectangle{Corners: map[shapes.Corner]float64{
			shapes.CornerTopLeft: 16, shapes.CornerBottomRight: 24,
		}}},
		{"heart", shapes.Heart{}},
		{"lens", shapes.Lens{ControlRatio: 0.1}},
		{"crescent", shapes.Crescent{}},
		{"teardrop", shapes.Teardrop{Variation: 0.5}},
		{"double teardrop", shapes.DoubleTeardrop{}},
		{"salinon", shapes.Salinon{InnerDiameterRatio: 0.2, Centered: true}},
		{"arbelos", shapes.NewArbelos()},
		{"lune", shapes.NewLune()},
		{"sector", shapes.CircleSector{Start: 0, End: 4, Clockwise: true}},
		{"arrowhead", shapes.NewArrowhead()},
		{"rounded corners", shapes.RoundedCornerRectangle{CornerRadius: 16, Corners: shapes.AllCorners}},
		{"inverted corners", shapes.InvertedCornerRectangle{CornerRadius: 16}},
		{"quad corner", stroked(shapes.QuadCorner{CornerRadius: 20})},
		{"line", stroked(shapes.Line{Start: shapes.UnitTopLeft, End: shapes.UnitBottomRight, BoundToFrame: true})},
		{"ogee", stroked(shapes.OgeeCurve{ControlX: 0.5, Type: shapes.CymaRecta})},
		{"s-curve", stroked(shapes.SCurve{Control1: shapes.UnitBottomRight, Control2: shapes.UnitTopLeft})},
		{"reuleaux", shapes.ReuleauxTriangle()},
		{"egg", shapes.Egg{ApexAngle: 120}},
		{"spiral", stroked(shapes.NewSpiral(5))},
		{"dragon", stroked(shapes.NewDragonCurve(10))},
		{"spirolateral", stroked(shapes.NewSpirolateral(7, 90, 4))},
		{"triquetra", stroked(shapes.Triquetra{})},
		{"check", shapes.Check{Rows: 6, Columns: 6}},
		{"hatching", shapes.NewHatching(8)},
		{"ben day", shapes.BenDayDot{Radius: 4, Spacing: 4}},
		{"halftone", shapes.Halftone{Radius: 4, Spacing: 4}},
		{"steiner chain", shapes.AnnularSteinerChain{CircleCount: 7, RenderRing: true}},
		{"sponge", shapes.NewSpongeFilter(shapes.Circle{}, shapes.Circle{}, 7)},
		{"data", stroked(shapes.DataPath{Data: shapes.DampedOscillator(200, 100, 0, 0.02)})},
		{"bar", shapes.Bar{Style: dashed.WithWidth(0.3), RepeatCount: 5}},
		{"ring", shapes.Ring{Style: dashed, RepeatCount: 12}},
		{"bordered rectangle", shapes.BorderedRectangle{Style: dashed, RepeatCount: 8}},
		{"bordered polygon", shapes.BorderedPolygon{Sides: 5, Style: dashed, RepeatCount: 5}},
		{"stroke styled circle", shapes.NewStrokeStyledCircle()},
		{"stroke styled polygon", shapes.NewStrokeStyledPolygon(6, 12)},
		{"stroke styled rectangle", shapes.NewStrokeStyledRectangle()},
		{"union", shapes.Adding(shapes.Circle{}, shapes.Bullet{Taper: 30})},
		{"subtract", shapes.Subtracting(shapes.Rectangle{}, shapes.Circle{})},
		{"inverted", shapes.InvertedShape{Shape: shapes.StarPolygon{Points: 5, Density: 2}, Inset: 8}},
		{"tiled", shapes.TiledShape{Shape: shapes.Circle{}, Rows: 3, Columns: 3}},
		{"circle pattern", shapes.CirclePattern{Shape: shapes.IsoscelesTriangle{}, Repetitions: 8}},
		{"skewed", shapes.SkewedShape{Shape: shapes.Rectangle{}, Skew: shapes.Pt(0.3, 0), Anchor: shapes.UnitCenter}},
	}
}

func main() {
	var (
		output  = flag.String("o", "gallery.png", "output file")
		cell    = flag.Int("cell", 128, "cell size in pixels")
		cols    = flag.Int("cols", 8, "cells per row")
		verbose = flag.Bool("v", false, "log geometry diagnostics")
	)
	flag.Parse()

	if *verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	entries := catalog()
	if err := run(entries, *output, *cell, *cols); err != nil {
		log.Fatalf("shapesgallery: %v", err)
	}
	log.Printf("Gallery of %d shapes saved to %s\n", len(entries), *output)
}

func run(entries []entry, output string, cell, cols int) error {
	if cell <= 0 || cols <= 0 {
		return fmt.Errorf("invalid layout: cell %d, cols %d", cell, cols)
	}
	img := render(entries, cell, cols)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func render(entries []entry, cell, cols int) *image.RGBA {
	rows := (len(entries) + cols - 1) / cols
	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	pad := float64(cell) / 10
	frame := shapes.NewRect(0, 0, float64(cell), float64(cell)).Inset(pad)
	for i, e := range entries {
		p := e.shape.Path(frame)
		shapes.Logger().Debug("rendered", slog.String("shape", e.name), slog.Int("elements", p.Len()))
		mask := shapes.Rasterize(p, cell, cell)
		at := image.Pt((i%cols)*cell, (i/cols)*cell)
		fill := image.NewUniform(palette[i%len(palette)])
		draw.DrawMask(img, mask.Bounds().Add(at), fill, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return img
}
