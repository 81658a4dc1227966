package text

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixkit/buffer"
)

// Vertex stream geometry. Each vertex is (x, y, color, u, v) where color is
// a pixkit.Color packed with FloatBits.
const (
	VertexSize       = 5
	VerticesPerGlyph = 4
	FloatsPerGlyph   = VertexSize * VerticesPerGlyph
	IndicesPerGlyph  = 6

	vertexStride = VertexSize * 4 // bytes
)

// VertexLayout describes the FontCache vertex stream to a render pipeline:
// position float32x2 at location 0, packed color at location 1 and texture
// coordinates float32x2 at location 2. The color is declared as float32;
// shaders recover the bytes with unpack4x8unorm(bitcast<u32>(color)).
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},    // color
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 2}, // uv
		},
	}
}

// QuadIndices appends two triangles per glyph quad to dst, in the order
// BL, TL, TR and TR, BR, BL of the vertices FontCache emits.
func QuadIndices(dst *buffer.Ints, glyphs int) {
	if glyphs <= 0 {
		return
	}
	dst.Ensure(glyphs * IndicesPerGlyph)
	for i := range glyphs {
		v := int32(i * VerticesPerGlyph)
		dst.Add(v, v+1, v+2, v+2, v+3, v)
	}
}
