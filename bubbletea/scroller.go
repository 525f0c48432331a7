package bubbletea

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/fwojciec/hjkl"
)

// Scroller moves a viewport on behalf of the navigation bindings.
// Offsets are clamped by the viewport, so scrolling past either edge stops there.
type Scroller struct {
	vp *viewport.Model
}

var _ hjkl.Scroller = (*Scroller)(nil)

// NewScroller returns a Scroller for vp. The viewport must outlive the Scroller.
func NewScroller(vp *viewport.Model) *Scroller {
	return &Scroller{vp: vp}
}

// ScrollBy moves the view by dx columns and dy rows.
func (s *Scroller) ScrollBy(dx, dy int) {
	switch {
	case dx < 0:
		s.vp.ScrollLeft(-dx)
	case dx > 0:
		s.vp.ScrollRight(dx)
	}
	switch {
	case dy < 0:
		s.vp.ScrollUp(-dy)
	case dy > 0:
		s.vp.ScrollDown(dy)
	}
}

// ScrollTo moves the top-left corner of the view to column x, row y.
func (s *Scroller) ScrollTo(x, y int) {
	s.vp.SetXOffset(x)
	s.vp.SetYOffset(y)
}

// ScrollHeight returns the number of content lines.
func (s *Scroller) ScrollHeight() int {
	return s.vp.TotalLineCount()
}
