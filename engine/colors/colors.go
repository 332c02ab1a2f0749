package colors

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non premultiplied) RGBA color with components in [0, 1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Vec4 returns the color as a vertex attribute value.
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }

// RGBA8 builds a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// HSV builds an opaque color from hue in degrees and saturation/value in [0, 1].
// Hue wraps into [0, 360); saturation and value are clamped.
func HSV(h, s, v float32) Color {
	return fromColorful(colorful.Hsv(wrapHue(h), clamp01(s), clamp01(v)))
}

// HSL builds an opaque color from hue in degrees and saturation/lightness in [0, 1].
func HSL(h, s, l float32) Color {
	return fromColorful(colorful.Hsl(wrapHue(h), clamp01(s), clamp01(l)))
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}
}

func wrapHue(h float32) float64 {
	hh := math.Mod(float64(h), 360)
	if hh < 0 {
		hh += 360
	}
	return hh
}

func clamp01(v float32) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return float64(v)
}
