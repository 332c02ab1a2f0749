package glbackend

import (
	"fmt"
	"io/fs"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/overlay"
	"go.uber.org/zap"
)

// OverlayBackend keeps an overlay's vertex and index buffers on the GPU.
type OverlayBackend struct {
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	projLoc  int32
	vboVerts int // vertex capacity of vbo
	log      *zap.Logger
}

var _ overlay.Backend = (*OverlayBackend)(nil)

// NewOverlayBackend compiles the overlay program from shaders (nil means the
// embedded set) and creates its buffers. Needs a current GL context.
func NewOverlayBackend(shaders fs.FS, log *zap.Logger) (*OverlayBackend, error) {
	if shaders == nil {
		shaders = assets.Shaders
	}
	if log == nil {
		log = zap.NewNop()
	}
	vsSrc, err := assets.LoadShader(shaders, "overlay.vert")
	if err != nil {
		return nil, err
	}
	fsSrc, err := assets.LoadShader(shaders, "overlay.frag")
	if err != nil {
		return nil, err
	}
	prog, err := makeProgram(vsSrc, fsSrc)
	if err != nil {
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	b := &OverlayBackend{program: prog, log: log.Named("overlay-gl")}
	b.projLoc = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	stride := int32(overlay.VertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(overlay.UVOffset))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, uintptr(overlay.ColorOffset))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b, nil
}

func (b *OverlayBackend) Upload(vertices []overlay.Vertex, indices []uint32) {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*overlay.VertexSize, ptr(vertices), gl.DYNAMIC_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, ptr(indices), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)
	b.vboVerts = len(vertices)
	b.log.Debug("upload", zap.Int("vertices", len(vertices)), zap.Int("indices", len(indices)))
}

func (b *OverlayBackend) WriteRange(begin int, vertices []overlay.Vertex) {
	if len(vertices) == 0 {
		return
	}
	if begin < 0 || begin+len(vertices) > b.vboVerts {
		b.log.Error("range outside vertex buffer",
			zap.Int("begin", begin), zap.Int("count", len(vertices)), zap.Int("capacity", b.vboVerts))
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, begin*overlay.VertexSize, len(vertices)*overlay.VertexSize, ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetViewport maps pixel coordinates (origin top-left, y down) to clip space.
func (b *OverlayBackend) SetViewport(width, height int) {
	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.projLoc, 1, false, &proj[0])
	gl.UseProgram(0)
}

func (b *OverlayBackend) DrawElements(count int) {
	gl.UseProgram(b.program)
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (b *OverlayBackend) Shutdown() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
}

func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}
