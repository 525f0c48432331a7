package hjkl

// Token is a run of source text drawn in a single style.
type Token struct {
	Text  string
	Style TokenStyle
}

// TokenStyle describes how a Token is drawn. The zero value draws it in the
// document's text style.
type TokenStyle struct {
	Foreground Color
	Bold       bool
	Italic     bool
}

// Tokenizer highlights source code.
type Tokenizer interface {
	// TokenizeLines returns the tokens of each line of source, or nil when the
	// language is unknown.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector names the language of a document so the Tokenizer can
// highlight it.
type LanguageDetector interface {
	DetectFromPath(path string) string
	// DetectFromContent is the fallback for input without a usable name.
	DetectFromContent(source string) string
}
