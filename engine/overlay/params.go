package overlay

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/canopy/engine/colors"
)

// Offset is one axis of a window's position or size relative to its parent:
// (ratio of parent width, ratio of parent height, pixels).
// It resolves to ratioW*parent.width + ratioH*parent.height + px.
type Offset = mgl32.Vec3

// Px is a pure pixel offset.
func Px(px float32) Offset { return Offset{0, 0, px} }

// Rel is an offset made of both parent ratios plus a pixel constant.
func Rel(ratioW, ratioH, px float32) Offset { return Offset{ratioW, ratioH, px} }

// Corner indexes Params.Color and Params.TexCoord.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Params is the declarative description of a window.
//
// Pos is the top-left corner relative to the parent's top-left corner and
// Size is the width and height, both per axis as an Offset. The root window
// ignores the ratio terms and uses the pixel constants directly.
type Params struct {
	Pos      [2]Offset
	Size     [2]Offset
	Color    [4]colors.Color
	TexCoord [4]mgl32.Vec2
	Shown    bool
}

// DefaultParams is a shown, transparent window covering its whole parent.
func DefaultParams() Params {
	return Params{
		Size:  [2]Offset{Rel(1, 0, 0), Rel(0, 1, 0)},
		Shown: true,
		TexCoord: [4]mgl32.Vec2{
			TopLeft:     {0, 0},
			TopRight:    {1, 0},
			BottomLeft:  {0, 1},
			BottomRight: {1, 1},
		},
	}
}

// Fill sets all four corner colors to c.
func (p *Params) Fill(c colors.Color) {
	for i := range p.Color {
		p.Color[i] = c
	}
}

// VerticalGradient colors the top edge with top and the bottom edge with bottom.
func (p *Params) VerticalGradient(top, bottom colors.Color) {
	p.Color[TopLeft], p.Color[TopRight] = top, top
	p.Color[BottomLeft], p.Color[BottomRight] = bottom, bottom
}
