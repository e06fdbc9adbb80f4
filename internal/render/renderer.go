package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

const (
	// ringSegments is the number of world-space points used to trace a ripple.
	ringSegments = 24
	// faceOnRatio is the minor/major axis ratio above which a projected ring
	// is drawn as a screen-space circle.
	faceOnRatio = 0.9
)

// Stats summarizes one Draw call.
type Stats struct {
	Sprites int
	Culled  int
}

// Renderer rasterizes an animation's sprites through a perspective camera.
// It rebuilds its vertex buffer on every Draw and never keeps sprites across
// frames.
type Renderer struct {
	camera  Camera
	sprites []core.Sprite
	verts   []float32
}

// NewRenderer constructs a renderer using cam.
func NewRenderer(cam Camera) *Renderer {
	return &Renderer{camera: cam}
}

// SetCamera replaces the camera, typically after an animation switch.
func (r *Renderer) SetCamera(cam Camera) { r.camera = cam }

// Vertices returns the vertex buffer built by the last Draw.
func (r *Renderer) Vertices() []float32 { return r.verts }

// Draw clears dst to the animation's background and splats every sprite.
func (r *Renderer) Draw(anim core.Animation, dst *Raster) Stats {
	bg := colorful.Color{}
	if b, ok := anim.(core.Backdrop); ok {
		bg = b.ClearColor()
	}
	dst.Clear(bg)

	src, ok := anim.(core.SpriteSource)
	if !ok {
		return Stats{}
	}
	r.sprites = src.AppendSprites(r.sprites[:0])
	r.verts = Pack(r.sprites, r.verts)

	vp := r.camera.ViewProjection(dst.W, dst.H)
	var st Stats
	for off := 0; off+VertexStride <= len(r.verts); off += VertexStride {
		st.Sprites++
		if !r.splat(vp, r.verts[off:off+VertexStride], dst) {
			st.Culled++
		}
	}
	return st
}

func (r *Renderer) splat(vp mgl32.Mat4, v []float32, dst *Raster) bool {
	pos := mgl32.Vec3{v[0], v[1], v[2]}
	rot := mgl32.Vec3{v[3], v[4], v[5]}
	col := colorful.Color{R: float64(v[6]), G: float64(v[7]), B: float64(v[8])}
	alpha, size, length := v[9], v[10], v[11]
	shape := core.Shape(v[12])
	if alpha <= 0 {
		return false
	}

	switch shape {
	case core.ShapeStreak:
		top, ok1 := Project(vp, pos.Add(mgl32.Vec3{0, length, 0}), dst.W, dst.H)
		bottom, ok2 := Project(vp, pos, dst.W, dst.H)
		if !ok1 || !ok2 {
			return false
		}
		dst.Line(top.X, top.Y, bottom.X, bottom.Y, col, alpha)
		return true

	case core.ShapeRing:
		return splatRing(vp, pos, length, col, alpha, dst)

	case core.ShapeCrest:
		left, ok1 := Project(vp, pos.Sub(mgl32.Vec3{length, 0, 0}), dst.W, dst.H)
		right, ok2 := Project(vp, pos.Add(mgl32.Vec3{length, 0, 0}), dst.W, dst.H)
		if !ok1 || !ok2 {
			return false
		}
		dst.Line(left.X, left.Y, right.X, right.Y, col, alpha)
		return true
	}

	p, ok := Project(vp, pos, dst.W, dst.H)
	if !ok {
		return false
	}
	radius := size * r.camera.PixelsPerUnit(p.W, dst.H)
	switch shape {
	case core.ShapePetal:
		// A tumbling petal shows its edge twice per turn.
		radius *= 0.35 + 0.65*float32(math.Abs(math.Cos(float64(rot.X()))))
	case core.ShapeFoam:
		radius *= 0.8
	}
	if !dst.In(int(p.X), int(p.Y)) && radius < 1 {
		return false
	}
	dst.Disc(p.X, p.Y, radius, col, alpha)
	return true
}

// splatRing draws a horizontal ring of the given world radius. Rings seen
// nearly face-on are drawn as circles; oblique ones are traced as segments.
func splatRing(vp mgl32.Mat4, pos mgl32.Vec3, radius float32, col colorful.Color, alpha float32, dst *Raster) bool {
	c, ok0 := Project(vp, pos, dst.W, dst.H)
	ax, ok1 := Project(vp, pos.Add(mgl32.Vec3{radius, 0, 0}), dst.W, dst.H)
	az, ok2 := Project(vp, pos.Add(mgl32.Vec3{0, 0, radius}), dst.W, dst.H)
	if ok0 && ok1 && ok2 {
		rx := float32(math.Hypot(float64(ax.X-c.X), float64(ax.Y-c.Y)))
		rz := float32(math.Hypot(float64(az.X-c.X), float64(az.Y-c.Y)))
		if lo, hi := min(rx, rz), max(rx, rz); hi > 0 && lo/hi >= faceOnRatio {
			dst.Ring(c.X, c.Y, hi, col, alpha)
			return true
		}
	}

	var prev Projection
	drawn := false
	for i := 0; i <= ringSegments; i++ {
		t := 2 * math.Pi * float64(i) / ringSegments
		p := pos.Add(mgl32.Vec3{radius * float32(math.Cos(t)), 0, radius * float32(math.Sin(t))})
		cur, ok := Project(vp, p, dst.W, dst.H)
		if !ok {
			return drawn
		}
		if i > 0 {
			dst.Line(prev.X, prev.Y, cur.X, cur.Y, col, alpha)
			drawn = true
		}
		prev = cur
	}
	return drawn
}
