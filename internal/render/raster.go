package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Raster stores an RGB image as float32 channels in row-major order.
type Raster struct {
	W, H int
	data []float32
}

// NewRaster allocates a raster with the given dimensions.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{W: w, H: h, data: make([]float32, 3*w*h)}
}

// Pixels exposes the backing slice, three channels per pixel.
func (r *Raster) Pixels() []float32 { return r.data }

// Index returns the slice offset of the first channel at (x, y).
func (r *Raster) Index(x, y int) int { return 3 * (y*r.W + x) }

// In reports whether (x, y) lies inside the raster.
func (r *Raster) In(x, y int) bool { return x >= 0 && y >= 0 && x < r.W && y < r.H }

// Clear fills the raster with c.
func (r *Raster) Clear(c colorful.Color) {
	cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)
	for i := 0; i < len(r.data); i += 3 {
		r.data[i] = cr
		r.data[i+1] = cg
		r.data[i+2] = cb
	}
}

// At returns the color stored at (x, y).
func (r *Raster) At(x, y int) colorful.Color {
	if !r.In(x, y) {
		return colorful.Color{}
	}
	i := r.Index(x, y)
	return colorful.Color{R: float64(r.data[i]), G: float64(r.data[i+1]), B: float64(r.data[i+2])}
}

// Luminance returns the relative luminance at (x, y) in [0, 1].
func (r *Raster) Luminance(x, y int) float64 {
	c := r.At(x, y).Clamped()
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Plot blends c over the pixel at (x, y) with opacity a. Out-of-range
// coordinates are ignored.
func (r *Raster) Plot(x, y int, c colorful.Color, a float32) {
	if !r.In(x, y) || a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := r.Index(x, y)
	inv := 1 - a
	r.data[i] = r.data[i]*inv + float32(c.R)*a
	r.data[i+1] = r.data[i+1]*inv + float32(c.G)*a
	r.data[i+2] = r.data[i+2]*inv + float32(c.B)*a
}

// Disc fills a circle of the given radius. Radii below one pixel plot a
// single pixel.
func (r *Raster) Disc(cx, cy, radius float32, c colorful.Color, a float32) {
	if radius < 1 {
		r.Plot(round(cx), round(cy), c, a)
		return
	}
	x0, x1 := round(cx-radius), round(cx+radius)
	y0, y1 := round(cy-radius), round(cy+radius)
	rr := radius * radius
	for y := max(y0, 0); y <= min(y1, r.H-1); y++ {
		dy := float32(y) - cy
		for x := max(x0, 0); x <= min(x1, r.W-1); x++ {
			dx := float32(x) - cx
			if dx*dx+dy*dy <= rr {
				r.Plot(x, y, c, a)
			}
		}
	}
}

// Line draws a one pixel wide segment between two points.
func (r *Raster) Line(x0, y0, x1, y1 float32, c colorful.Color, a float32) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(float64(max(abs32(dx), abs32(dy)))))
	if steps == 0 {
		r.Plot(round(x0), round(y0), c, a)
		return
	}
	// Segments far outside the raster are not worth walking.
	if steps > 4*(r.W+r.H) {
		steps = 4 * (r.W + r.H)
	}
	sx, sy := dx/float32(steps), dy/float32(steps)
	for i := 0; i <= steps; i++ {
		r.Plot(round(x0+sx*float32(i)), round(y0+sy*float32(i)), c, a)
	}
}

// Ring draws a circle outline.
func (r *Raster) Ring(cx, cy, radius float32, c colorful.Color, a float32) {
	if radius < 1 {
		r.Plot(round(cx), round(cy), c, a)
		return
	}
	n := min(int(2*math.Pi*float64(radius))+8, 4*(r.W+r.H))
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		x := cx + radius*float32(math.Cos(t))
		y := cy + radius*float32(math.Sin(t))
		r.Plot(round(x), round(y), c, a)
	}
}

func round(v float32) int { return int(math.Floor(float64(v) + 0.5)) }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
