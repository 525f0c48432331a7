package mock

import "github.com/fwojciec/hjkl"

// Compile-time interface verification.
var _ hjkl.Scroller = (*Scroller)(nil)

// Scroller is a mock implementation of hjkl.Scroller.
type Scroller struct {
	ScrollByFn     func(dx, dy int)
	ScrollToFn     func(x, y int)
	ScrollHeightFn func() int
}

func (s *Scroller) ScrollBy(dx, dy int) {
	s.ScrollByFn(dx, dy)
}

func (s *Scroller) ScrollTo(x, y int) {
	s.ScrollToFn(x, y)
}

func (s *Scroller) ScrollHeight() int {
	return s.ScrollHeightFn()
}
