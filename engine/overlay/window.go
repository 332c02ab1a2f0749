package overlay

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is a handle to one window of an Overlay: the overlay, the arena
// index and the slot generation. Handles are plain values; copying one
// refers to the same window. The zero Window is invalid.
type Window struct {
	ov    *Overlay
	index int
	gen   uint32
}

func (w Window) node() *node {
	if w.ov == nil || w.ov.check(w) != nil {
		return nil
	}
	return &w.ov.nodes[w.index]
}

// Valid reports whether the handle refers to a live window.
func (w Window) Valid() bool { return w.node() != nil }

func (w Window) Overlay() *Overlay { return w.ov }
func (w Window) Index() int        { return w.index }

// Same reports whether both handles refer to the same live window.
func (w Window) Same(o Window) bool { return w.Valid() && w == o }

func (w Window) Name() string {
	if n := w.node(); n != nil {
		return n.name
	}
	return ""
}

// FullPath is the Separator-joined chain of names from the top-most ancestor
// down to w. The root does not contribute, so root.Child(w.FullPath())
// resolves back to w for attached windows.
func (w Window) FullPath() string {
	if w.node() == nil {
		return ""
	}
	return w.ov.path(w.index)
}

// Params returns a copy of the window's parameters.
func (w Window) Params() Params {
	if n := w.node(); n != nil {
		return n.params
	}
	return Params{}
}

// Pos is the resolved top-left corner in pixels as of the last Update.
func (w Window) Pos() mgl32.Vec2 {
	if n := w.node(); n != nil {
		return n.pos
	}
	return mgl32.Vec2{}
}

// Size is the resolved size in pixels as of the last Update.
func (w Window) Size() mgl32.Vec2 {
	if n := w.node(); n != nil {
		return n.size
	}
	return mgl32.Vec2{}
}

// VertexRange is [begin, end) of the window's subtree in the vertex buffer,
// (-1, -1) while the window is not part of the rendered tree.
func (w Window) VertexRange() (begin, end int) {
	if n := w.node(); n != nil {
		return n.begin, n.end
	}
	return -1, -1
}

// Attached reports whether w is reachable from the root.
func (w Window) Attached() bool {
	return w.node() != nil && w.ov.attached(w.index)
}

func (w Window) Parent() (Window, bool) {
	n := w.node()
	if n == nil || n.parent == noParent {
		return Window{}, false
	}
	return w.ov.Lookup(n.parent)
}

// Children returns the children in attachment (render) order.
func (w Window) Children() []Window {
	n := w.node()
	if n == nil {
		return nil
	}
	out := make([]Window, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, Window{ov: w.ov, index: c, gen: w.ov.nodes[c].gen})
	}
	return out
}

// Child resolves a Separator-delimited path of names below w.
func (w Window) Child(path string) (Window, bool) {
	if w.node() == nil || path == "" {
		return Window{}, false
	}
	cur := w.index
	for _, name := range strings.Split(path, Separator) {
		next, ok := w.ov.childByName(cur, name)
		if !ok {
			return Window{}, false
		}
		cur = next
	}
	return Window{ov: w.ov, index: cur, gen: w.ov.nodes[cur].gen}, true
}

func (w Window) Attach(child Window) error {
	if w.ov == nil {
		return ErrInvalidWindow
	}
	return w.ov.Attach(w, child)
}

func (w Window) Detach(child Window) error {
	if w.ov == nil {
		return ErrInvalidWindow
	}
	return w.ov.Detach(w, child)
}

func (w Window) Modify(fn func(*Params)) error {
	if w.ov == nil {
		return ErrInvalidWindow
	}
	return w.ov.Modify(w, fn)
}

// Show is a shorthand for toggling Params.Shown.
func (w Window) Show(shown bool) error {
	return w.Modify(func(p *Params) { p.Shown = shown })
}
