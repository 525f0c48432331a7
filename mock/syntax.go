package mock

import "github.com/fwojciec/hjkl"

// Compile-time interface verification.
var (
	_ hjkl.LanguageDetector = (*LanguageDetector)(nil)
	_ hjkl.Tokenizer        = (*Tokenizer)(nil)
)

// LanguageDetector is a mock implementation of hjkl.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn    func(path string) string
	DetectFromContentFn func(source string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

func (d *LanguageDetector) DetectFromContent(source string) string {
	return d.DetectFromContentFn(source)
}

// Tokenizer is a mock implementation of hjkl.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(language, source string) [][]hjkl.Token
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]hjkl.Token {
	return t.TokenizeLinesFn(language, source)
}
