package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLayer struct {
	name     string
	consume  bool
	attached bool
	events   []Event
	trace    *[]string
}

func (l *stubLayer) OnAttach(*Engine)          { l.attached = true }
func (l *stubLayer) OnUpdate(*Engine, float64) {}
func (l *stubLayer) OnRender(*Engine, float64) {}

func (l *stubLayer) OnDetach(*Engine) {
	l.attached = false
	*l.trace = append(*l.trace, "detach "+l.name)
}

func (l *stubLayer) OnEvent(_ *Engine, ev Event) bool {
	l.events = append(l.events, ev)
	*l.trace = append(*l.trace, "event "+l.name)
	return l.consume
}

type stubApp struct{ events []Event }

func (a *stubApp) OnStart(*Engine) error       { return nil }
func (a *stubApp) OnUpdate(*Engine, float64)   {}
func (a *stubApp) OnRender(*Engine, float64)   {}
func (a *stubApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *stubApp) OnShutdown(*Engine)          {}

func TestLayerStackOrder(t *testing.T) {
	var trace []string
	e := &Engine{Input: NewInput(), Log: zap.NewNop()}
	bottom := &stubLayer{name: "bottom", trace: &trace}
	top := &stubLayer{name: "top", trace: &trace}
	e.PushLayer(bottom)
	e.PushLayer(top)
	require.Equal(t, 2, e.Layers.Len())
	assert.True(t, bottom.attached)
	assert.True(t, top.attached)

	var seen []Layer
	e.Layers.ForEach(func(l Layer) { seen = append(seen, l) })
	assert.Equal(t, []Layer{bottom, top}, seen)

	l, ok := e.PopLayer()
	require.True(t, ok)
	assert.Same(t, top, l)
	assert.False(t, top.attached)
	e.PopLayer()
	_, ok = e.PopLayer()
	assert.False(t, ok)
	assert.Equal(t, []string{"detach top", "detach bottom"}, trace)
}

func TestDispatchStopsAtConsumingLayer(t *testing.T) {
	var trace []string
	app := &stubApp{}
	e := &Engine{Input: NewInput(), Log: zap.NewNop()}
	bottom := &stubLayer{name: "bottom", trace: &trace}
	top := &stubLayer{name: "top", consume: true, trace: &trace}
	e.PushLayer(bottom)
	e.PushLayer(top)

	e.dispatch(app, EventKey{Key: KeySpace, Down: true})
	assert.Equal(t, []string{"event top"}, trace)
	assert.Empty(t, app.events)
	assert.True(t, e.Input.IsKeyDown(KeySpace))

	top.consume = false
	e.dispatch(app, EventResize{W: 10, H: 20})
	assert.Equal(t, []string{"event top", "event top", "event bottom"}, trace)
	assert.Equal(t, []Event{EventResize{W: 10, H: 20}}, app.events)
}

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyTab, Down: true})
	assert.True(t, in.IsKeyDown(KeyTab))
	in.Handle(EventKey{Key: KeyTab, Down: false})
	assert.False(t, in.IsKeyDown(KeyTab))

	in.Handle(EventMouseMove{X: 3, Y: 4})
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 0.5})
	assert.Equal(t, 1.5, in.Scroll())
	assert.Zero(t, in.Scroll())
}
