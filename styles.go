package hjkl

// Color is a hex color string in "#RRGGBB" format. Empty means terminal default.
type Color string

// ColorPair represents a foreground and background color combination.
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the pager's visual elements.
type Styles struct {
	Text        ColorPair // Plain document text
	LineNumber  ColorPair // Line numbers in the gutter
	StatusBar   ColorPair // Bottom status bar
	StatusKey   ColorPair // Pending key shown in the status bar
	SearchMatch ColorPair // Lines matching the active search
	Prompt      ColorPair // Search prompt
	Error       ColorPair // Status messages reporting a failure
}

// Palette holds semantic colors used for syntax highlighting.
type Palette struct {
	Background Color
	Foreground Color

	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color
}

// Theme provides styles for rendering documents.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
