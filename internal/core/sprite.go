package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Shape selects how the renderer draws a sprite.
type Shape uint8

const (
	ShapePoint Shape = iota
	ShapeStreak
	ShapeRing
	ShapePetal
	ShapeFoam
	ShapeCrest
)

// Sprite is the kind-neutral draw record the rendering layer consumes.
// Length is a streak tail, ring radius or crest half-width depending on Shape.
type Sprite struct {
	Shape    Shape
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Color    colorful.Color
	Alpha    float32
	Size     float32
	Length   float32
}

// SpriteSource is implemented by animations that can be drawn.
type SpriteSource interface {
	// AppendSprites appends the current frame's sprites to dst.
	AppendSprites(dst []Sprite) []Sprite
}

// Backdrop is implemented by animations that tint the background.
type Backdrop interface {
	ClearColor() colorful.Color
}

// MustHex parses a "#rrggbb" colour and panics on malformed input. It is meant
// for package-level palettes.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
