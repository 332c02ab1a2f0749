package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/overlay"
	"go.uber.org/zap"
)

// LayerStats reports overlay and runtime statistics once per second in the
// window title, and to the log on Ctrl+P.
type LayerStats struct {
	ov     *overlay.Overlay
	title  string
	frames int
	last   time.Time
	frame  time.Duration
}

func (l *LayerStats) OnAttach(e *core.Engine) { l.last = time.Now() }
func (l *LayerStats) OnDetach(e *core.Engine) {}

func (l *LayerStats) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerStats) OnRender(e *core.Engine, alpha float64) {
	l.frames++
	now := time.Now()
	if elapsed := now.Sub(l.last); elapsed >= time.Second {
		l.frame = elapsed / time.Duration(l.frames)
		s := l.ov.Stats()
		e.Window.SetTitle(fmt.Sprintf("%s | %.2f ms | %d quads", l.title, float64(l.frame)/float64(time.Millisecond), s.Quads))
		l.frames, l.last = 0, now
	}
}

func (l *LayerStats) OnEvent(e *core.Engine, ev core.Event) bool {
	v, ok := ev.(core.EventKey)
	if !ok || !v.Down || v.Key != core.KeyP || v.Mods&core.ModCtrl == 0 {
		return false
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s := l.ov.Stats()
	e.Log.Info("stats",
		zap.Duration("frame", l.frame),
		zap.Int("quads", s.Quads),
		zap.Int("indices", s.TotalIndexCount()),
		zap.Int("fullUploads", s.FullUploads),
		zap.Int("partialUploads", s.PartialUploads),
		zap.Int("rangeWrites", s.RangeWrites),
		zap.Int("verticesWritten", s.VerticesWritten),
		zap.Int("drawCalls", s.DrawCalls),
		zap.Uint64("heapAlloc", m.HeapAlloc),
		zap.Uint64("mallocs", m.Mallocs),
		zap.Int("goroutines", runtime.NumGoroutine()),
		zap.String("gpu", e.Renderer.GPURenderer()))
	return true
}
