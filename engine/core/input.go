package core

// Input tracks the latest key and pointer state seen by the engine.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down {
			in.keys[e.Key] = true
		} else {
			delete(in.keys, e.Key)
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Scroll returns the vertical scroll accumulated since the last call.
func (in *Input) Scroll() float64 {
	s := in.scrollY
	in.scrollY = 0
	return s
}
