package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/hjkl/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		tabWidth int
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no tabs", input: "hello world", expected: "hello world"},
		{name: "single tab", input: "\t", expected: "        "},
		{name: "tab after one char", input: "a\t", expected: "a       "},
		{name: "tab after seven chars", input: "1234567\t", expected: "1234567 "},
		{name: "tab on a stop", input: "12345678\t", expected: "12345678        "},
		{name: "multiple tabs", input: "\t\t", expected: "                "},
		{name: "tab between words", input: "func\tmain", expected: "func    main"},
		{name: "start column offsets the first stop", input: "\tx", startCol: 3, expected: "     x"},
		{name: "custom tab width", input: "ab\tc", tabWidth: 4, expected: "ab  c"},
		{name: "wide rune counts two columns", input: "日\tx", expected: "日      x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bubbletea.ExpandTabs(tt.input, tt.startCol, tt.tabWidth)

			assert.Equal(t, tt.expected, got)
		})
	}
}
