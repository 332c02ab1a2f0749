package overlay

// Backend is the graphics side of an overlay. The overlay owns the CPU copy
// of both buffers and tells the backend what changed; slices passed in are
// only valid for the duration of the call.
type Backend interface {
	// Upload replaces the whole vertex and index buffers.
	Upload(vertices []Vertex, indices []uint32)
	// WriteRange overwrites vertices starting at vertex index begin.
	WriteRange(begin int, vertices []Vertex)
	// SetViewport reports the overlay area in pixels.
	SetViewport(width, height int)
	// DrawElements draws the first count indices as triangles.
	DrawElements(count int)
}

type headless struct{}

func (headless) Upload([]Vertex, []uint32) {}
func (headless) WriteRange(int, []Vertex)  {}
func (headless) SetViewport(int, int)      {}
func (headless) DrawElements(int)          {}

// Statistics captures the GPU traffic of the last frame (Update + Draw).
type Statistics struct {
	FullUploads     int
	PartialUploads  int
	RangeWrites     int
	VerticesWritten int
	DrawCalls       int
	Quads           int
}

// TotalIndexCount reports the indices drawn per draw call.
func (s Statistics) TotalIndexCount() int { return s.Quads * indsPerQuad }
