package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/hjkl"
)

// StyleFunc maps chroma token types to token styles.
type StyleFunc func(chromalib.TokenType) hjkl.TokenStyle

// StyleFromPalette returns a StyleFunc coloring tokens by their chroma category.
func StyleFromPalette(p hjkl.Palette) StyleFunc {
	return func(tt chromalib.TokenType) hjkl.TokenStyle {
		switch {
		case tt == chromalib.KeywordType:
			return hjkl.TokenStyle{Foreground: p.Type, Bold: true}
		case tt.InCategory(chromalib.Keyword):
			return hjkl.TokenStyle{Foreground: p.Keyword, Bold: true}
		case tt.InCategory(chromalib.Comment):
			return hjkl.TokenStyle{Foreground: p.Comment, Italic: true}
		case tt.InSubCategory(chromalib.String):
			return hjkl.TokenStyle{Foreground: p.String}
		case tt.InSubCategory(chromalib.Number):
			return hjkl.TokenStyle{Foreground: p.Number}
		case tt.InCategory(chromalib.Operator):
			return hjkl.TokenStyle{Foreground: p.Operator}
		case tt == chromalib.NameFunction, tt == chromalib.NameFunctionMagic:
			return hjkl.TokenStyle{Foreground: p.Function}
		case tt == chromalib.NameConstant:
			return hjkl.TokenStyle{Foreground: p.Constant}
		case tt.InCategory(chromalib.Punctuation):
			return hjkl.TokenStyle{Foreground: p.Punctuation}
		}
		return hjkl.TokenStyle{}
	}
}
