package hjkl

// DefaultStep is the scroll distance used for h, j, k and l.
const DefaultStep = 32

// Step is the distance moved by one relative scroll on each axis.
type Step struct {
	X int
	Y int
}

// Scroller is the surface the navigation bindings move.
type Scroller interface {
	// ScrollBy moves the view by dx columns and dy rows.
	ScrollBy(dx, dy int)
	// ScrollTo moves the view to an absolute position.
	ScrollTo(x, y int)
	// ScrollHeight returns the full height of the scrollable content.
	ScrollHeight() int
}

// BindNavigation registers the vim navigation keys on d:
//
//	h   left by step.X       j   down by step.Y
//	k   up by step.Y         l   right by step.X
//	gg  top                  G   bottom
func BindNavigation(d *Dispatcher, s Scroller, step Step) *Dispatcher {
	return d.
		Bind(Binding{Sequence: MustParseSequence("h"), Help: "left", Action: func() { s.ScrollBy(-step.X, 0) }}).
		Bind(Binding{Sequence: MustParseSequence("j"), Help: "down", Action: func() { s.ScrollBy(0, step.Y) }}).
		Bind(Binding{Sequence: MustParseSequence("k"), Help: "up", Action: func() { s.ScrollBy(0, -step.Y) }}).
		Bind(Binding{Sequence: MustParseSequence("l"), Help: "right", Action: func() { s.ScrollBy(step.X, 0) }}).
		Bind(Binding{Sequence: MustParseSequence("gg"), Help: "go to top", Action: func() { s.ScrollTo(0, 0) }}).
		Bind(Binding{Sequence: MustParseSequence("G"), Help: "go to bottom", Action: func() { s.ScrollTo(0, s.ScrollHeight()) }})
}
