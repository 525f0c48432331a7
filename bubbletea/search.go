package bubbletea

import (
	"fmt"
	"strings"
	"unicode"
)

// search holds the active search pattern and the lines it matched.
// Patterns without upper-case letters match case-insensitively.
type search struct {
	pattern string
	matches []int // display line indices, ascending
	current int   // index into matches, -1 when there are none
}

// newSearch finds pattern in lines and selects the first match at or after
// line from, wrapping to the first match in the document.
func newSearch(pattern string, lines []string, from int) search {
	s := search{pattern: pattern, current: -1}
	if pattern == "" {
		return s
	}
	fold := !hasUpper(pattern)
	if fold {
		pattern = strings.ToLower(pattern)
	}
	for i, line := range lines {
		if fold {
			line = strings.ToLower(line)
		}
		if strings.Contains(line, pattern) {
			s.matches = append(s.matches, i)
		}
	}
	if len(s.matches) == 0 {
		return s
	}
	s.current = 0
	for i, line := range s.matches {
		if line >= from {
			s.current = i
			break
		}
	}
	return s
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// active reports whether a pattern is set.
func (s search) active() bool {
	return s.pattern != ""
}

// line returns the selected match.
func (s search) line() (int, bool) {
	if s.current < 0 {
		return 0, false
	}
	return s.matches[s.current], true
}

// next selects the following match, wrapping at the end.
func (s *search) next() (int, bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.line()
}

// prev selects the preceding match, wrapping at the start.
func (s *search) prev() (int, bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
	return s.line()
}

// lineSet returns the matched lines as a set for rendering.
func (s search) lineSet() map[int]bool {
	if len(s.matches) == 0 {
		return nil
	}
	set := make(map[int]bool, len(s.matches))
	for _, line := range s.matches {
		set[line] = true
	}
	return set
}

// status describes the search for the status bar.
func (s search) status() string {
	if len(s.matches) == 0 {
		return fmt.Sprintf("pattern not found: %s", s.pattern)
	}
	return fmt.Sprintf("/%s  match %d/%d", s.pattern, s.current+1, len(s.matches))
}
