package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertColor(t *testing.T, want, got Color) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "channel %d of %v", i, got)
	}
}

func TestRGBA8(t *testing.T) {
	assertColor(t, White, RGBA8(255, 255, 255, 255))
	assertColor(t, Color{0, 0, 0, 0}, RGBA8(0, 0, 0, 0))
	assertColor(t, Color{1, 0.5019608, 0, 1}, RGBA8(255, 128, 0, 255))
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    Color
	}{
		{0, 1, 1, Red},
		{120, 1, 1, Green},
		{240, 1, 1, Blue},
		{360, 1, 1, Red},
		{-120, 1, 1, Blue},
		{60, 1, 1, Yellow},
		{0, 0, 1, White},
		{0, 0, 0, Black},
		{300, 2, 1, Magenta},
		{180, 1, -1, Black},
	}
	for _, test := range tests {
		assertColor(t, test.want, HSV(test.h, test.s, test.v))
	}
}

func TestHSL(t *testing.T) {
	assertColor(t, Red, HSL(0, 1, 0.5))
	assertColor(t, Cyan, HSL(180, 1, 0.5))
	assertColor(t, White, HSL(42, 0.7, 1))
	assertColor(t, Gray, HSL(0, 0, 0.5))
}

func TestWithAlphaAndVec4(t *testing.T) {
	c := Yellow.WithAlpha(0.25)
	assert.Equal(t, Color{1, 1, 0, 0.25}, c)
	assert.Equal(t, Color{1, 1, 0, 1}, Yellow)

	v := c.Vec4()
	assert.Equal(t, float32(0.25), v.W())
	assert.Equal(t, float32(1), v.X())
}
