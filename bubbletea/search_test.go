package bubbletea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSearch(t *testing.T) {
	t.Parallel()

	lines := []string{"alpha", "Beta", "gamma", "alphabet", "delta", "BETAmax"}

	t.Run("lower case pattern ignores case", func(t *testing.T) {
		t.Parallel()

		s := newSearch("beta", lines, 0)

		assert.Equal(t, []int{1, 5}, s.matches)
	})

	t.Run("upper case pattern is case sensitive", func(t *testing.T) {
		t.Parallel()

		s := newSearch("Beta", lines, 0)

		assert.Equal(t, []int{1}, s.matches)
	})

	t.Run("selects first match at or after the start line", func(t *testing.T) {
		t.Parallel()

		s := newSearch("alpha", lines, 2)

		line, ok := s.line()
		assert.True(t, ok)
		assert.Equal(t, 3, line)
	})

	t.Run("wraps when no match follows the start line", func(t *testing.T) {
		t.Parallel()

		s := newSearch("alpha", lines, 4)

		line, ok := s.line()
		assert.True(t, ok)
		assert.Equal(t, 0, line)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		s := newSearch("omega", lines, 0)

		_, ok := s.line()
		assert.False(t, ok)
		assert.True(t, s.active())
		assert.Equal(t, "pattern not found: omega", s.status())
		assert.Nil(t, s.lineSet())
	})

	t.Run("empty pattern is inactive", func(t *testing.T) {
		t.Parallel()

		s := newSearch("", lines, 0)

		assert.False(t, s.active())
	})
}

func TestSearch_NextPrev(t *testing.T) {
	t.Parallel()

	s := newSearch("a", []string{"a", "b", "a", "a"}, 0)

	line, _ := s.next()
	assert.Equal(t, 2, line)
	line, _ = s.next()
	assert.Equal(t, 3, line)
	line, _ = s.next()
	assert.Equal(t, 0, line, "wraps to the first match")
	line, _ = s.prev()
	assert.Equal(t, 3, line, "wraps to the last match")
	assert.Equal(t, "/a  match 3/3", s.status())
	assert.Equal(t, map[int]bool{0: true, 2: true, 3: true}, s.lineSet())
}
