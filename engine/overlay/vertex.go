package overlay

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex: pos2 + uv2 + color4 => 8 floats
type Vertex struct {
	Pos   mgl32.Vec2
	UV    mgl32.Vec2
	Color mgl32.Vec4
}

const (
	VertexSize   = int(unsafe.Sizeof(Vertex{}))
	UVOffset     = int(unsafe.Offsetof(Vertex{}.UV))
	ColorOffset  = int(unsafe.Offsetof(Vertex{}.Color))
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// quadIndices triangulates top-left, top-right, bottom-right, bottom-left.
var quadIndices = [indsPerQuad]uint32{0, 1, 2, 0, 2, 3}

// appendQuadIndices grows inds so that it covers quads quads.
func appendQuadIndices(inds []uint32, quads int) []uint32 {
	if len(inds) >= quads*indsPerQuad {
		return inds[:quads*indsPerQuad]
	}
	for q := len(inds) / indsPerQuad; q < quads; q++ {
		base := uint32(q * vertsPerQuad)
		for _, i := range quadIndices {
			inds = append(inds, base+i)
		}
	}
	return inds
}
