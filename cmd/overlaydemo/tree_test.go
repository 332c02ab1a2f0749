package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T) (*overlay.Overlay, *demoTree) {
	t.Helper()
	ov := overlay.New(800, 600, nil)
	tr, err := buildTree(ov)
	require.NoError(t, err)
	ov.Update()
	return ov, tr
}

func assertRect(t *testing.T, w overlay.Window, pos, size mgl32.Vec2) {
	t.Helper()
	assert.True(t, w.Pos().ApproxEqualThreshold(pos, 1e-3), "pos of %s: %v", w.FullPath(), w.Pos())
	assert.True(t, w.Size().ApproxEqualThreshold(size, 1e-3), "size of %s: %v", w.FullPath(), w.Size())
}

func TestBuildTreeLayout(t *testing.T) {
	ov, tr := newTree(t)
	assert.Len(t, ov.Vertices(), 24)
	assert.Len(t, ov.Indices(), 36)
	assert.Equal(t, 6, ov.Len())

	assertRect(t, tr.title, mgl32.Vec2{0, 0}, mgl32.Vec2{800, 32})
	assertRect(t, tr.column, mgl32.Vec2{0, 32}, mgl32.Vec2{160, 568})
	assertRect(t, tr.panel, mgl32.Vec2{168, 40}, mgl32.Vec2{624, 552})
	assertRect(t, tr.top, mgl32.Vec2{184, 56}, mgl32.Vec2{592, 252})
	assertRect(t, tr.bottom, mgl32.Vec2{184, 324}, mgl32.Vec2{592, 252})

	w, ok := ov.Root().Child("panel.bottom")
	require.True(t, ok)
	assert.True(t, w.Same(tr.bottom))
}

func TestTogglePanelHidesCards(t *testing.T) {
	ov, tr := newTree(t)

	require.NoError(t, tr.togglePanel())
	ov.Update()
	assert.Zero(t, ov.Stats().FullUploads)
	assertRect(t, tr.top, mgl32.Vec2{-1, -1}, mgl32.Vec2{})
	assertRect(t, tr.bottom, mgl32.Vec2{-1, -1}, mgl32.Vec2{})

	require.NoError(t, tr.togglePanel())
	ov.Update()
	assertRect(t, tr.top, mgl32.Vec2{184, 56}, mgl32.Vec2{592, 252})
}

func TestCycleColumnRecolours(t *testing.T) {
	ov, tr := newTree(t)
	require.NoError(t, tr.cycleColumn())
	ov.Update()

	want := colors.HSV(255, 0.45, 0.55).Vec4()
	begin, _ := tr.column.VertexRange()
	for _, v := range ov.Vertices()[begin : begin+4] {
		assert.True(t, v.Color.ApproxEqual(want), "colour %v", v.Color)
	}
	assert.Equal(t, 1, ov.Stats().RangeWrites)
}

func TestToggleCard(t *testing.T) {
	ov, tr := newTree(t)

	require.NoError(t, tr.toggleCard())
	assert.False(t, tr.bottom.Attached())
	ov.Update()
	assert.Len(t, ov.Vertices(), 20)
	assert.Len(t, tr.panel.Children(), 1)

	require.NoError(t, tr.toggleCard())
	ov.Update()
	assert.Len(t, ov.Vertices(), 24)
	assert.Equal(t, "panel.bottom", tr.bottom.FullPath())
	assertRect(t, tr.bottom, mgl32.Vec2{184, 324}, mgl32.Vec2{592, 252})
}

func TestDemoResize(t *testing.T) {
	ov, tr := newTree(t)
	ov.Resize(1000, 600)
	ov.Update()
	assertRect(t, tr.column, mgl32.Vec2{0, 32}, mgl32.Vec2{200, 568})
	assertRect(t, tr.panel, mgl32.Vec2{208, 40}, mgl32.Vec2{784, 552})
}
