package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/shapes"
)

func TestCatalogNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range catalog() {
		if e.name == "" || e.shape == nil {
			t.Fatalf("incomplete entry %+v", e)
		}
		if seen[e.name] {
			t.Errorf("duplicate entry %q", e.name)
		}
		seen[e.name] = true
	}
}

func TestRender(t *testing.T) {
	entries := []entry{
		{"square", shapes.Square{}},
		{"circle", shapes.Circle{}},
		{"star", shapes.StarPolygon{Points: 5, Density: 2}},
	}
	img := render(entries, 32, 2)
	if got := img.Bounds().Size(); got.X != 64 || got.Y != 64 {
		t.Fatalf("size = %v, want 64x64", got)
	}
	// The padded square fills the middle of the first cell.
	if c := img.RGBAAt(16, 16); c != palette[0] {
		t.Errorf("square cell center = %v, want %v", c, palette[0])
	}
	if c := img.RGBAAt(1, 1); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("padding = %v, want white", c)
	}
	if c := img.RGBAAt(48, 48); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("unused cell = %v, want white", c)
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gallery.png")
	if err := run(catalog(), out, 48, 6); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 6*48 {
		t.Errorf("width = %d, want %d", cfg.Width, 6*48)
	}
}

func TestRun_InvalidLayout(t *testing.T) {
	if err := run(nil, filepath.Join(t.TempDir(), "x.png"), 0, 4); err == nil {
		t.Error("zero cell size accepted")
	}
}
