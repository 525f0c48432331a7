package bubbletea

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the distance between tab stops.
const DefaultTabWidth = 8

// ExpandTabs replaces tabs in s with spaces up to the next multiple of
// tabWidth. startCol is the display column s begins at. A non-positive
// tabWidth uses DefaultTabWidth.
func ExpandTabs(s string, startCol, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
			continue
		}
		next := (col/tabWidth + 1) * tabWidth
		sb.WriteString(strings.Repeat(" ", next-col))
		col = next
	}
	return sb.String()
}
