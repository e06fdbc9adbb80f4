package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

func TestNewRasterClampsSize(t *testing.T) {
	r := NewRaster(0, -3)
	if r.W != 1 || r.H != 1 || len(r.Pixels()) != 3 {
		t.Fatalf("raster = %dx%d with %d channels, want 1x1 with 3", r.W, r.H, len(r.Pixels()))
	}
}

func TestClearAndPlot(t *testing.T) {
	r := NewRaster(4, 3)
	bg := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	r.Clear(bg)
	if got := r.At(3, 2); got.DistanceRgb(bg) > 1e-6 {
		t.Fatalf("At(3,2) = %v, want %v", got, bg)
	}

	r.Plot(1, 1, white, 0.5)
	want := colorful.Color{R: 0.6, G: 0.7, B: 0.8}
	if got := r.At(1, 1); got.DistanceRgb(want) > 1e-6 {
		t.Fatalf("blended pixel = %v, want %v", got, want)
	}

	r.Plot(-1, 0, white, 1)
	r.Plot(4, 0, white, 1)
	r.Plot(0, 3, white, 1)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if r.At(x, y).DistanceRgb(bg) > 1e-6 {
				t.Fatalf("out-of-range plot leaked into (%d, %d)", x, y)
			}
		}
	}
}

func TestDiscCoversRadius(t *testing.T) {
	r := NewRaster(21, 21)
	r.Disc(10, 10, 4, white, 1)
	if r.Luminance(10, 10) < 0.99 || r.Luminance(14, 10) < 0.99 || r.Luminance(10, 6) < 0.99 {
		t.Fatal("disc missing pixels inside its radius")
	}
	if r.Luminance(15, 10) != 0 || r.Luminance(14, 14) != 0 {
		t.Fatal("disc painted outside its radius")
	}
}

func TestLineHitsEndpoints(t *testing.T) {
	r := NewRaster(10, 10)
	r.Line(1, 1, 8, 6, white, 1)
	if r.Luminance(1, 1) < 0.99 || r.Luminance(8, 6) < 0.99 {
		t.Fatal("line endpoints not plotted")
	}
	lit := 0
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if r.Luminance(x, y) > 0 {
				lit++
			}
		}
	}
	if lit < 8 {
		t.Fatalf("line lit %d pixels, want at least 8", lit)
	}
}

func TestRingLeavesCenterEmpty(t *testing.T) {
	r := NewRaster(21, 21)
	r.Ring(10, 10, 6, white, 1)
	if r.Luminance(10, 10) != 0 {
		t.Fatal("ring filled its center")
	}
	if r.Luminance(16, 10) < 0.99 || r.Luminance(4, 10) < 0.99 {
		t.Fatal("ring missing points on its radius")
	}
}

func TestFillRGBA(t *testing.T) {
	px := []float32{0, 0.5, 1, -1, 2, 0.25}
	buf := make([]byte, 8)
	fillRGBA(buf, px)
	want := []byte{0, 128, 255, 255, 0, 255, 64, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}
