// Package overlay renders a tree of rectangular 2D windows on top of a scene.
//
// Windows live in a flat arena owned by an Overlay; the root is slot 0 and
// covers the whole viewport. Every attached window owns one quad in a shared
// vertex buffer, laid out in pre-order: a window's range is its own four
// vertices followed by the ranges of its children in attachment order.
// Attaching or detaching marks the layout for a full reindex and upload;
// Modify only re-resolves the geometry of the window and its subtree and
// writes those ranges in place.
//
// The coordinate system has its origin at the top-left of the viewport,
// X pointing right, Y pointing down and one unit per pixel.
//
// An Overlay is not safe for concurrent use; call everything, Update and
// Draw included, from the render thread.
package overlay

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Separator joins window names into paths.
const Separator = "."

const noParent = -1

type node struct {
	name   string
	params Params
	gen    uint32
	free   bool

	pos, size mgl32.Vec2
	visible   bool

	children []int
	parent   int

	begin, end int
	dirty      bool
}

type Overlay struct {
	nodes    []node
	freeList []int

	dirty        []int
	needsReindex bool

	verts   []Vertex
	inds    []uint32
	backend Backend

	width, height int

	log   *zap.Logger
	stats Statistics
}

type Option func(*Overlay)

// WithLogger routes overlay diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(ov *Overlay) {
		if l != nil {
			ov.log = l
		}
	}
}

// New creates an overlay of width x height pixels. A nil backend keeps the
// buffers CPU side only.
func New(width, height int, backend Backend, opts ...Option) *Overlay {
	if backend == nil {
		backend = headless{}
	}
	ov := &Overlay{
		backend:      backend,
		width:        width,
		height:       height,
		log:          zap.NewNop(),
		needsReindex: true,
	}
	for _, opt := range opts {
		opt(ov)
	}

	root := DefaultParams()
	root.Size = [2]Offset{Px(float32(width)), Px(float32(height))}
	ov.nodes = append(ov.nodes, node{parent: noParent, params: root, begin: 0, end: vertsPerQuad})
	ov.markDirty(0)

	ov.backend.SetViewport(width, height)
	return ov
}

// Root returns the root window.
func (ov *Overlay) Root() Window { return Window{ov: ov, index: 0, gen: ov.nodes[0].gen} }

// Lookup returns the live window stored at index.
func (ov *Overlay) Lookup(index int) (Window, bool) {
	if index < 0 || index >= len(ov.nodes) || ov.nodes[index].free {
		return Window{}, false
	}
	return Window{ov: ov, index: index, gen: ov.nodes[index].gen}, true
}

// Len reports the number of live windows, root included.
func (ov *Overlay) Len() int { return len(ov.nodes) - len(ov.freeList) }

// Viewport returns the overlay size in pixels.
func (ov *Overlay) Viewport() (width, height int) { return ov.width, ov.height }

// Vertices is the CPU copy of the vertex buffer as of the last Update.
func (ov *Overlay) Vertices() []Vertex { return ov.verts }

// Indices is the CPU copy of the index buffer as of the last Update.
func (ov *Overlay) Indices() []uint32 { return ov.inds }

// Stats returns the statistics of the last Update and Draw.
func (ov *Overlay) Stats() Statistics { return ov.stats }

// MakeWindow creates a detached window. Names must not contain Separator.
func (ov *Overlay) MakeWindow(name string, params Params) (Window, error) {
	if strings.Contains(name, Separator) {
		return Window{}, &nameError{name: name}
	}

	n := node{
		name:   name,
		params: params,
		parent: noParent,
		begin:  -1,
		end:    -1,
	}

	var index int
	if last := len(ov.freeList) - 1; last >= 0 {
		index = ov.freeList[last]
		ov.freeList = ov.freeList[:last]
		n.gen = ov.nodes[index].gen
		n.children = ov.nodes[index].children[:0]
		ov.nodes[index] = n
	} else {
		index = len(ov.nodes)
		ov.nodes = append(ov.nodes, n)
	}
	return Window{ov: ov, index: index, gen: n.gen}, nil
}

// Attach appends child to parent's children. The child must be detached,
// must not contain parent in its subtree and its name must be unique among
// parent's children.
func (ov *Overlay) Attach(parent, child Window) error {
	if err := ov.check(parent, child); err != nil {
		return err
	}
	if child.index == 0 {
		return ErrRootWindow
	}

	c := &ov.nodes[child.index]
	if c.parent != noParent {
		return ov.reject(&AttachError{
			Kind:   ErrAlreadyAttached,
			Child:  ov.path(child.index),
			Parent: ov.path(parent.index),
			Other:  ov.path(c.parent),
		})
	}
	for i := parent.index; i != noParent; i = ov.nodes[i].parent {
		if i == child.index {
			return ov.reject(&AttachError{
				Kind:   ErrCycle,
				Child:  ov.path(child.index),
				Parent: ov.path(parent.index),
				Other:  ov.path(parent.index),
			})
		}
	}
	if sib, ok := ov.childByName(parent.index, c.name); ok {
		return ov.reject(&AttachError{
			Kind:   ErrNameCollision,
			Child:  ov.path(child.index),
			Parent: ov.path(parent.index),
			Other:  ov.path(sib),
		})
	}

	p := &ov.nodes[parent.index]
	p.children = append(p.children, child.index)
	c.parent = parent.index
	ov.needsReindex = true
	ov.markSubtreeDirty(child.index)
	return nil
}

// Detach removes child from parent's children. The detached subtree keeps
// its windows and parameters but leaves the vertex buffer.
func (ov *Overlay) Detach(parent, child Window) error {
	if err := ov.check(parent, child); err != nil {
		return err
	}

	c := &ov.nodes[child.index]
	if c.parent != parent.index {
		err := &DetachError{Child: ov.path(child.index), Parent: ov.path(parent.index)}
		if c.parent != noParent {
			err.Actual = ov.path(c.parent)
		}
		return ov.reject(err)
	}

	p := &ov.nodes[parent.index]
	for i, idx := range p.children {
		if idx == child.index {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = noParent
	ov.walk(child.index, func(n *node) { n.begin, n.end = -1, -1 })
	ov.needsReindex = true
	return nil
}

// Modify applies fn to the window's parameters and marks the window and its
// descendants for a geometry update.
func (ov *Overlay) Modify(w Window, fn func(*Params)) error {
	if err := ov.check(w); err != nil {
		return err
	}
	fn(&ov.nodes[w.index].params)
	ov.markSubtreeDirty(w.index)
	return nil
}

// Release frees a detached window and its whole subtree. Their slots are
// reused by later MakeWindow calls; handles to them become stale.
func (ov *Overlay) Release(w Window) error {
	if err := ov.check(w); err != nil {
		return err
	}
	if w.index == 0 {
		return ErrRootWindow
	}
	if ov.nodes[w.index].parent != noParent {
		return ErrStillAttached
	}

	var released []int
	ov.walkIndex(w.index, func(i int) { released = append(released, i) })
	for _, i := range released {
		n := &ov.nodes[i]
		n.free = true
		n.gen++
		n.parent = noParent
		n.children = n.children[:0]
		n.dirty = false
		n.params = Params{}
		ov.freeList = append(ov.freeList, i)
	}
	ov.log.Debug("overlay: released windows", zap.Int("count", len(released)))
	return nil
}

// Resize changes the viewport. The root takes the new size and every
// attached window is re-resolved. Non-positive sizes (a minimized window)
// are ignored.
func (ov *Overlay) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == ov.width && height == ov.height {
		return
	}
	ov.width, ov.height = width, height
	root := &ov.nodes[0].params
	root.Size = [2]Offset{Px(float32(width)), Px(float32(height))}
	ov.markSubtreeDirty(0)
	ov.backend.SetViewport(width, height)
}

// ------ internals ------

func (ov *Overlay) check(ws ...Window) error {
	for _, w := range ws {
		switch {
		case w.ov == nil:
			return ErrInvalidWindow
		case w.ov != ov:
			return ErrForeignWindow
		case w.index < 0 || w.index >= len(ov.nodes):
			return ErrInvalidWindow
		case ov.nodes[w.index].free || ov.nodes[w.index].gen != w.gen:
			return ErrStaleWindow
		}
	}
	return nil
}

func (ov *Overlay) reject(err error) error {
	ov.log.Warn("overlay: rejected tree change", zap.Error(err))
	return err
}

func (ov *Overlay) markDirty(i int) {
	n := &ov.nodes[i]
	if !n.dirty {
		n.dirty = true
		ov.dirty = append(ov.dirty, i)
	}
}

func (ov *Overlay) markSubtreeDirty(i int) {
	ov.walkIndex(i, ov.markDirty)
}

func (ov *Overlay) walk(i int, fn func(*node)) {
	ov.walkIndex(i, func(j int) { fn(&ov.nodes[j]) })
}

// walkIndex visits i and its descendants in pre-order.
func (ov *Overlay) walkIndex(i int, fn func(int)) {
	fn(i)
	for _, c := range ov.nodes[i].children {
		ov.walkIndex(c, fn)
	}
}

func (ov *Overlay) childByName(parent int, name string) (int, bool) {
	for _, c := range ov.nodes[parent].children {
		if ov.nodes[c].name == name {
			return c, true
		}
	}
	return 0, false
}

// path joins names from the top-most ancestor down. The root's name is
// empty and does not contribute.
func (ov *Overlay) path(i int) string {
	var names []string
	for ; i != noParent; i = ov.nodes[i].parent {
		if i == 0 {
			break
		}
		names = append(names, ov.nodes[i].name)
	}
	for l, r := 0, len(names)-1; l < r; l, r = l+1, r-1 {
		names[l], names[r] = names[r], names[l]
	}
	return strings.Join(names, Separator)
}

func (ov *Overlay) attached(i int) bool {
	for ; i != noParent; i = ov.nodes[i].parent {
		if i == 0 {
			return true
		}
	}
	return false
}
