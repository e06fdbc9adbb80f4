package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

type fakeAnimation struct {
	bg      colorful.Color
	sprites []core.Sprite
}

func (f *fakeAnimation) Name() string { return "fake" }
func (f *fakeAnimation) Kind() core.Kind { return core.KindFlow }
func (f *fakeAnimation) Initialize() {}
func (f *fakeAnimation) Step(float64) {}
func (f *fakeAnimation) ClearColor() colorful.Color { return f.bg }
func (f *fakeAnimation) AppendSprites(dst []core.Sprite) []core.Sprite {
	return append(dst, f.sprites...)
}

type bareAnimation struct{}

func (bareAnimation) Name() string { return "bare" }
func (bareAnimation) Kind() core.Kind { return core.KindFlow }
func (bareAnimation) Initialize() {}
func (bareAnimation) Step(float64) {}

func TestPackLayout(t *testing.T) {
	s := core.Sprite{
		Shape:    core.ShapeRing,
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{4, 5, 6},
		Color:    colorful.Color{R: 0.1, G: 0.2, B: 0.3},
		Alpha:    0.5,
		Size:     7,
		Length:   8,
	}
	buf := Pack([]core.Sprite{s, s}, nil)
	if len(buf) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexStride)
	}
	v := buf[VertexStride:]
	if v[0] != 1 || v[5] != 6 || v[9] != 0.5 || v[10] != 7 || v[11] != 8 || core.Shape(v[12]) != core.ShapeRing {
		t.Fatalf("second vertex = %v", v[:VertexStride])
	}
	if again := Pack(nil, buf); len(again) != 0 {
		t.Fatalf("repacking nothing left %d values", len(again))
	}
}

func TestDrawUsesClearColor(t *testing.T) {
	bg := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	anim := &fakeAnimation{bg: bg}
	r := NewRenderer(CameraFor(core.KindFlow))
	dst := NewRaster(8, 8)
	st := r.Draw(anim, dst)
	if st.Sprites != 0 {
		t.Fatalf("sprites = %d, want 0", st.Sprites)
	}
	if dst.At(0, 0).DistanceRgb(bg) > 1e-6 {
		t.Fatalf("background = %v, want %v", dst.At(0, 0), bg)
	}
}

func TestDrawSplatsVisibleSprites(t *testing.T) {
	anim := &fakeAnimation{sprites: []core.Sprite{
		{Shape: core.ShapePoint, Color: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1, Size: 2},
		{Shape: core.ShapePoint, Position: mgl32.Vec3{0, 0, 300}, Color: colorful.Color{R: 1}, Alpha: 1, Size: 2},
		{Shape: core.ShapePoint, Color: colorful.Color{G: 1}, Alpha: 0, Size: 2},
	}}
	r := NewRenderer(CameraFor(core.KindFlow))
	dst := NewRaster(64, 64)
	st := r.Draw(anim, dst)
	if st.Sprites != 3 || st.Culled != 2 {
		t.Fatalf("stats = %+v, want 3 sprites with 2 culled", st)
	}
	if dst.Luminance(32, 32) < 0.99 {
		t.Fatalf("center luminance = %v, want the origin sprite drawn", dst.Luminance(32, 32))
	}
	if len(r.Vertices()) != 3*VertexStride {
		t.Fatalf("vertices = %d, want %d", len(r.Vertices()), 3*VertexStride)
	}
}

func TestDrawShapes(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	anim := &fakeAnimation{sprites: []core.Sprite{
		{Shape: core.ShapeStreak, Position: mgl32.Vec3{0, 5, 0}, Color: white, Alpha: 1, Length: 3},
		{Shape: core.ShapeRing, Position: mgl32.Vec3{0, 0, 0}, Color: white, Alpha: 1, Length: 2},
		{Shape: core.ShapeCrest, Position: mgl32.Vec3{0, 1, -20}, Color: white, Alpha: 1, Length: 40},
		{Shape: core.ShapePetal, Position: mgl32.Vec3{0, 20, 0}, Color: white, Alpha: 1, Size: 1},
		{Shape: core.ShapeFoam, Position: mgl32.Vec3{5, 1, -20}, Color: white, Alpha: 1, Size: 1},
	}}
	r := NewRenderer(CameraFor(core.KindRain))
	dst := NewRaster(96, 64)
	st := r.Draw(anim, dst)
	if st.Culled != 0 {
		t.Fatalf("culled = %d, want every shape drawn", st.Culled)
	}
}

func TestDrawWithoutSprites(t *testing.T) {
	r := NewRenderer(CameraFor(core.KindFlow))
	dst := NewRaster(4, 4)
	dst.Clear(colorful.Color{R: 1})
	if st := r.Draw(bareAnimation{}, dst); st != (Stats{}) {
		t.Fatalf("stats = %+v for an animation without sprites", st)
	}
	if dst.Luminance(0, 0) != 0 {
		t.Fatal("background not cleared to black")
	}
}

func TestDrawFaceOnRingAsCircle(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	cam := Camera{Eye: mgl32.Vec3{0, 50, 0}, Up: mgl32.Vec3{0, 0, -1}, FovY: 60, Near: 0.1, Far: 200}
	anim := &fakeAnimation{sprites: []core.Sprite{
		{Shape: core.ShapeRing, Color: white, Alpha: 1, Length: 5},
	}}
	r := NewRenderer(cam)
	dst := NewRaster(64, 64)
	if st := r.Draw(anim, dst); st.Culled != 0 {
		t.Fatalf("stats = %+v, want the ring drawn", st)
	}

	vp := cam.ViewProjection(64, 64)
	c, _ := Project(vp, mgl32.Vec3{}, 64, 64)
	ax, _ := Project(vp, mgl32.Vec3{5, 0, 0}, 64, 64)
	az, _ := Project(vp, mgl32.Vec3{0, 0, 5}, 64, 64)
	rx := float32(math.Hypot(float64(ax.X-c.X), float64(ax.Y-c.Y)))
	rz := float32(math.Hypot(float64(az.X-c.X), float64(az.Y-c.Y)))
	want := NewRaster(64, 64)
	want.Ring(c.X, c.Y, max(rx, rz), white, 1)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if dst.Luminance(x, y) != want.Luminance(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, dst.Luminance(x, y), want.Luminance(x, y))
			}
		}
	}
	if dst.Luminance(round(c.X), round(c.Y)) != 0 {
		t.Fatal("face-on ring filled its center")
	}
}
