package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

// Camera is a perspective camera looking from Eye toward Target.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	// FovY is the vertical field of view in degrees.
	FovY      float32
	Near, Far float32
}

// CameraFor returns the framing used for each animation kind.
func CameraFor(kind core.Kind) Camera {
	c := Camera{Up: mgl32.Vec3{0, 1, 0}, FovY: 60, Near: 0.1, Far: 600}
	switch kind {
	case core.KindRain:
		c.Eye = mgl32.Vec3{0, 18, 95}
		c.Target = mgl32.Vec3{0, 12, 0}
	case core.KindFlowers:
		c.Eye = mgl32.Vec3{0, 30, 110}
		c.Target = mgl32.Vec3{0, 24, 0}
	case core.KindWaves:
		c.Eye = mgl32.Vec3{0, 22, 75}
		c.Target = mgl32.Vec3{0, 0, -40}
	default:
		c.Eye = mgl32.Vec3{0, 0, 200}
		c.Target = mgl32.Vec3{}
	}
	return c
}

// ViewProjection returns the combined projection * view matrix for a w*h target.
func (c Camera) ViewProjection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	return proj.Mul4(view)
}

// Projection is a point mapped to raster coordinates.
type Projection struct {
	X, Y float32
	// W is the clip-space w, the distance along the view axis.
	W float32
}

// Project maps p to raster coordinates using a precomputed view-projection.
// ok is false when p is behind the camera or outside the depth range.
func Project(vp mgl32.Mat4, p mgl32.Vec3, w, h int) (Projection, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return Projection{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return Projection{}, false
	}
	return Projection{
		X: (ndc.X() + 1) * 0.5 * float32(w),
		Y: (1 - ndc.Y()) * 0.5 * float32(h),
		W: clip.W(),
	}, true
}

// Project maps p to raster coordinates for a w*h target.
func (c Camera) Project(p mgl32.Vec3, w, h int) (Projection, bool) {
	return Project(c.ViewProjection(w, h), p, w, h)
}

// PixelsPerUnit returns how many raster pixels one world unit spans at clip
// depth clipW on a target of height h.
func (c Camera) PixelsPerUnit(clipW float32, h int) float32 {
	if clipW <= 0 {
		return 0
	}
	half := math.Tan(float64(mgl32.DegToRad(c.FovY)) / 2)
	return float32(float64(h) / (2 * half * float64(clipW)))
}
