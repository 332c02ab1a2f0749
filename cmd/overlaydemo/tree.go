package main

import (
	"fmt"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/overlay"
)

const titleHeight = 32

// demoTree is the window hierarchy the demo edits at runtime:
//
//	root
//	├── title
//	├── column
//	└── panel
//	    ├── top
//	    └── bottom
type demoTree struct {
	title, column, panel overlay.Window
	top, bottom          overlay.Window
	hue                  float32
}

func buildTree(ov *overlay.Overlay) (*demoTree, error) {
	t := &demoTree{hue: 210}

	title := overlay.DefaultParams()
	title.Size = [2]overlay.Offset{overlay.Rel(1, 0, 0), overlay.Px(titleHeight)}
	title.VerticalGradient(colors.RGBA8(70, 80, 96, 255), colors.RGBA8(40, 46, 56, 255))

	column := overlay.DefaultParams()
	column.Pos = [2]overlay.Offset{overlay.Px(0), overlay.Px(titleHeight)}
	column.Size = [2]overlay.Offset{overlay.Rel(0.2, 0, 0), overlay.Rel(0, 1, -titleHeight)}
	column.Fill(colors.HSV(t.hue, 0.45, 0.55))

	panel := overlay.DefaultParams()
	panel.Pos = [2]overlay.Offset{overlay.Rel(0.2, 0, 8), overlay.Px(titleHeight + 8)}
	panel.Size = [2]overlay.Offset{overlay.Rel(0.8, 0, -16), overlay.Rel(0, 1, -titleHeight-16)}
	panel.Fill(colors.Black.WithAlpha(0.5))

	top := overlay.DefaultParams()
	top.Pos = [2]overlay.Offset{overlay.Px(16), overlay.Px(16)}
	top.Size = [2]overlay.Offset{overlay.Rel(1, 0, -32), overlay.Rel(0, 0.5, -24)}
	top.Fill(colors.HSL(30, 0.7, 0.55))

	bottom := top
	bottom.Pos = [2]overlay.Offset{overlay.Px(16), overlay.Rel(0, 0.5, 8)}
	bottom.VerticalGradient(colors.HSL(150, 0.5, 0.5), colors.HSL(150, 0.5, 0.3))

	var err error
	mk := func(dst *overlay.Window, name string, p overlay.Params) {
		if err != nil {
			return
		}
		*dst, err = ov.MakeWindow(name, p)
	}
	mk(&t.title, "title", title)
	mk(&t.column, "column", column)
	mk(&t.panel, "panel", panel)
	mk(&t.top, "top", top)
	mk(&t.bottom, "bottom", bottom)
	if err != nil {
		return nil, fmt.Errorf("make windows: %w", err)
	}

	root := ov.Root()
	for _, step := range []struct{ parent, child overlay.Window }{
		{root, t.title},
		{root, t.column},
		{root, t.panel},
		{t.panel, t.top},
		{t.panel, t.bottom},
	} {
		if err := step.parent.Attach(step.child); err != nil {
			return nil, fmt.Errorf("build tree: %w", err)
		}
	}
	return t, nil
}

// togglePanel shows or hides the panel together with its cards.
func (t *demoTree) togglePanel() error {
	return t.panel.Show(!t.panel.Params().Shown)
}

// cycleColumn steps the column colour around the hue wheel.
func (t *demoTree) cycleColumn() error {
	t.hue += 45
	c := colors.HSV(t.hue, 0.45, 0.55)
	return t.column.Modify(func(p *overlay.Params) { p.Fill(c) })
}

// toggleCard detaches the bottom card or puts it back.
func (t *demoTree) toggleCard() error {
	if t.bottom.Attached() {
		return t.panel.Detach(t.bottom)
	}
	return t.panel.Attach(t.bottom)
}
