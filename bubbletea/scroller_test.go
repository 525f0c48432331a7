package bubbletea_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/fwojciec/hjkl/bubbletea"
	"github.com/stretchr/testify/assert"
)

const wideLine = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMN"

// numberedViewport returns a 10x3 viewport over n lines of wideLine, each
// prefixed by its index.
func numberedViewport(n int) *viewport.Model {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%02d%s", i, wideLine)
	}
	vp := viewport.New(10, 3)
	vp.SetContent(strings.Join(lines, "\n"))
	return &vp
}

func TestScroller_ScrollBy(t *testing.T) {
	t.Parallel()

	t.Run("moves down and up by rows", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(20)
		s := bubbletea.NewScroller(vp)

		s.ScrollBy(0, 5)
		assert.Equal(t, 5, vp.YOffset)

		s.ScrollBy(0, -2)
		assert.Equal(t, 3, vp.YOffset)
	})

	t.Run("moves right and left by columns", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(5)
		s := bubbletea.NewScroller(vp)

		s.ScrollBy(32, 0)
		assert.True(t, strings.HasPrefix(vp.View(), "uvwxyzABCD"), vp.View())

		s.ScrollBy(-32, 0)
		assert.True(t, strings.HasPrefix(vp.View(), "000123456"), vp.View())
	})

	t.Run("stops at the edges", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(20)
		s := bubbletea.NewScroller(vp)

		s.ScrollBy(0, -1)
		assert.Equal(t, 0, vp.YOffset)

		s.ScrollBy(0, 100)
		assert.Equal(t, 17, vp.YOffset)
		assert.True(t, vp.AtBottom())
	})
}

func TestScroller_ScrollTo(t *testing.T) {
	t.Parallel()

	t.Run("top", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(20)
		vp.SetYOffset(10)
		s := bubbletea.NewScroller(vp)

		s.ScrollTo(0, 0)

		assert.True(t, vp.AtTop())
	})

	t.Run("bottom via scroll height", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(20)
		s := bubbletea.NewScroller(vp)

		s.ScrollTo(0, s.ScrollHeight())

		assert.True(t, vp.AtBottom())
	})

	t.Run("resets the horizontal offset", func(t *testing.T) {
		t.Parallel()

		vp := numberedViewport(5)
		s := bubbletea.NewScroller(vp)
		s.ScrollBy(32, 0)

		s.ScrollTo(0, 0)

		assert.InDelta(t, 0.0, vp.HorizontalScrollPercent(), 0.001)
	})
}

func TestScroller_ScrollHeight(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewScroller(numberedViewport(42))

	assert.Equal(t, 42, s.ScrollHeight())
}
