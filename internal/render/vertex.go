package render

import "backdrop/internal/core"

// VertexStride is the number of float32 values Pack writes per sprite:
// position(3) rotation(3) rgb(3) alpha size length shape.
const VertexStride = 13

// Pack flattens sprites into an interleaved vertex buffer, reusing dst.
func Pack(sprites []core.Sprite, dst []float32) []float32 {
	dst = dst[:0]
	for _, s := range sprites {
		dst = append(dst,
			s.Position[0], s.Position[1], s.Position[2],
			s.Rotation[0], s.Rotation[1], s.Rotation[2],
			float32(s.Color.R), float32(s.Color.G), float32(s.Color.B),
			s.Alpha, s.Size, s.Length, float32(s.Shape),
		)
	}
	return dst
}
