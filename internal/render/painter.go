//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a Raster into an ebiten image and draws it scaled.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a raster of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads r into the painter image and draws it onto dst.
func (p *Painter) Blit(dst *ebiten.Image, r *Raster, scale int) {
	if r.W != p.w || r.H != p.h {
		return
	}
	fillRGBA(p.buf, r.Pixels())
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
