package overlay

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Update brings the vertex and index buffers in line with the tree. After
// an Attach or Detach the whole layout is recomputed and re-uploaded;
// otherwise only the ranges of dirty windows are rewritten. With nothing
// pending it does no GPU work.
func (ov *Overlay) Update() {
	ov.stats = Statistics{Quads: len(ov.inds) / indsPerQuad}

	switch {
	case ov.needsReindex:
		ov.fullUpdate()
	case len(ov.dirty) > 0:
		ov.partialUpdate()
	}
}

// Draw issues one indexed draw over the whole index buffer. Call Update
// first in the same frame.
func (ov *Overlay) Draw() {
	if len(ov.inds) == 0 {
		return
	}
	ov.backend.DrawElements(len(ov.inds))
	ov.stats.DrawCalls++
}

func (ov *Overlay) fullUpdate() {
	ov.reindex(0)

	total := ov.nodes[0].end
	if cap(ov.verts) < total {
		ov.verts = make([]Vertex, total)
	} else {
		ov.verts = ov.verts[:total]
	}
	ov.resolveSubtree(0)

	quads := total / vertsPerQuad
	ov.inds = appendQuadIndices(ov.inds, quads)
	ov.backend.Upload(ov.verts, ov.inds)

	ov.clearDirty()
	ov.needsReindex = false

	ov.stats.FullUploads++
	ov.stats.VerticesWritten += total
	ov.stats.Quads = quads
	ov.log.Debug("overlay: reindexed", zap.Int("quads", quads), zap.Int("vertices", total))
}

// reindex assigns pre-order vertex ranges below i, starting after i's own quad.
func (ov *Overlay) reindex(i int) {
	next := ov.nodes[i].begin + vertsPerQuad
	for _, c := range ov.nodes[i].children {
		ov.nodes[c].begin = next
		ov.reindex(c)
		next = ov.nodes[c].end
	}
	ov.nodes[i].end = next
}

func (ov *Overlay) resolveSubtree(i int) {
	ov.resolve(i)
	for _, c := range ov.nodes[i].children {
		ov.resolveSubtree(c)
	}
}

// partialUpdate re-resolves dirty windows in pre-order (ascending vertex
// begin, so parents come before their children) and writes each run of
// adjacent quads with a single WriteRange.
func (ov *Overlay) partialUpdate() {
	pending := ov.dirty[:0:0]
	for _, i := range ov.dirty {
		n := &ov.nodes[i]
		if !n.dirty {
			continue
		}
		n.dirty = false
		if n.free || n.begin < 0 {
			continue
		}
		pending = append(pending, i)
	}
	ov.dirty = ov.dirty[:0]
	if len(pending) == 0 {
		return
	}

	slices.SortFunc(pending, func(a, b int) int { return ov.nodes[a].begin - ov.nodes[b].begin })

	runBegin, runEnd := -1, -1
	flush := func() {
		if runBegin < 0 {
			return
		}
		ov.backend.WriteRange(runBegin, ov.verts[runBegin:runEnd])
		ov.stats.RangeWrites++
		ov.stats.VerticesWritten += runEnd - runBegin
	}
	for _, i := range pending {
		ov.resolve(i)
		b := ov.nodes[i].begin
		if b != runEnd {
			flush()
			runBegin = b
		}
		runEnd = b + vertsPerQuad
	}
	flush()
	ov.stats.PartialUploads++
}

func (ov *Overlay) clearDirty() {
	for _, i := range ov.dirty {
		ov.nodes[i].dirty = false
	}
	ov.dirty = ov.dirty[:0]
}

// resolve computes the absolute geometry of window i from its parameters and
// its parent's resolved geometry, then writes its quad.
func (ov *Overlay) resolve(i int) {
	n := &ov.nodes[i]
	prm := &n.params

	var pos, size mgl32.Vec2
	if n.parent == noParent {
		n.visible = prm.Shown
		pos = mgl32.Vec2{prm.Pos[0].Z(), prm.Pos[1].Z()}
		size = mgl32.Vec2{prm.Size[0].Z(), prm.Size[1].Z()}
	} else {
		p := &ov.nodes[n.parent]
		n.visible = prm.Shown && p.visible
		basis := mgl32.Vec3{p.size.X(), p.size.Y(), 1}
		pos = p.pos.Add(mgl32.Vec2{prm.Pos[0].Dot(basis), prm.Pos[1].Dot(basis)})
		size = mgl32.Vec2{prm.Size[0].Dot(basis), prm.Size[1].Dot(basis)}
	}
	if !n.visible {
		pos = mgl32.Vec2{-1, -1}
		size = mgl32.Vec2{}
	}
	n.pos, n.size = pos, size

	q := ov.verts[n.begin : n.begin+vertsPerQuad]
	q[0] = Vertex{Pos: pos, UV: prm.TexCoord[TopLeft], Color: prm.Color[TopLeft].Vec4()}
	q[1] = Vertex{Pos: pos.Add(mgl32.Vec2{size.X(), 0}), UV: prm.TexCoord[TopRight], Color: prm.Color[TopRight].Vec4()}
	q[2] = Vertex{Pos: pos.Add(size), UV: prm.TexCoord[BottomRight], Color: prm.Color[BottomRight].Vec4()}
	q[3] = Vertex{Pos: pos.Add(mgl32.Vec2{0, size.Y()}), UV: prm.TexCoord[BottomLeft], Color: prm.Color[BottomLeft].Vec4()}
}
