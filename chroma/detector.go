package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.LanguageDetector = (*Detector)(nil)

// Detector detects programming languages using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// DetectFromContent guesses the language from source text, for input
// without a file name such as stdin. Returns an empty string when no lexer
// recognises the content.
func (d *Detector) DetectFromContent(source string) string {
	lexer := lexers.Analyse(source)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
