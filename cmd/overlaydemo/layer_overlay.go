package main

import (
	"io/fs"

	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/overlay"
	"go.uber.org/zap"
)

// LayerOverlay owns the overlay and drives it from input.
type LayerOverlay struct {
	ov      *overlay.Overlay
	backend *glbackend.OverlayBackend
	tree    *demoTree
	log     *zap.Logger
}

func newLayerOverlay(e *core.Engine, shaders fs.FS) (*LayerOverlay, error) {
	log := e.Log.Named("overlay")
	backend, err := glbackend.NewOverlayBackend(shaders, log)
	if err != nil {
		return nil, err
	}
	w, h := e.Window.FramebufferSize()
	ov := overlay.New(w, h, backend, overlay.WithLogger(log))
	tree, err := buildTree(ov)
	if err != nil {
		backend.Shutdown()
		return nil, err
	}
	return &LayerOverlay{ov: ov, backend: backend, tree: tree, log: log}, nil
}

func (l *LayerOverlay) OnAttach(e *core.Engine) {
	l.log.Info("overlay ready", zap.Int("windows", l.ov.Len()))
}

func (l *LayerOverlay) OnDetach(e *core.Engine) { l.backend.Shutdown() }

func (l *LayerOverlay) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerOverlay) OnRender(e *core.Engine, alpha float64) {
	l.ov.Update()
	l.ov.Draw()
}

func (l *LayerOverlay) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.ov.Resize(v.W, v.H)
	case core.EventKey:
		if !v.Down || v.Repeat {
			return false
		}
		var err error
		switch v.Key {
		case core.KeySpace:
			err = l.tree.togglePanel()
		case core.KeyTab:
			err = l.tree.cycleColumn()
		case core.KeyR:
			err = l.tree.toggleCard()
		default:
			return false
		}
		if err != nil {
			l.log.Error("edit failed", zap.Error(err))
		}
		return true
	}
	return false
}
