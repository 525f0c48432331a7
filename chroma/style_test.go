package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/hjkl"
	"github.com/fwojciec/hjkl/chroma"
	"github.com/stretchr/testify/assert"
)

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	palette := hjkl.Palette{
		Keyword:     "#ff00ff",
		String:      "#00ff00",
		Number:      "#ff8800",
		Comment:     "#888888",
		Operator:    "#00ffff",
		Function:    "#0000ff",
		Type:        "#ffff00",
		Constant:    "#ff7700",
		Punctuation: "#aaaaaa",
	}
	styleFunc := chroma.StyleFromPalette(palette)

	tests := []struct {
		name  string
		token chromalib.TokenType
		want  hjkl.TokenStyle
	}{
		{name: "keyword", token: chromalib.Keyword, want: hjkl.TokenStyle{Foreground: "#ff00ff", Bold: true}},
		{name: "keyword subtype", token: chromalib.KeywordDeclaration, want: hjkl.TokenStyle{Foreground: "#ff00ff", Bold: true}},
		{name: "type keyword", token: chromalib.KeywordType, want: hjkl.TokenStyle{Foreground: "#ffff00", Bold: true}},
		{name: "string", token: chromalib.String, want: hjkl.TokenStyle{Foreground: "#00ff00"}},
		{name: "string escape", token: chromalib.StringEscape, want: hjkl.TokenStyle{Foreground: "#00ff00"}},
		{name: "number", token: chromalib.NumberHex, want: hjkl.TokenStyle{Foreground: "#ff8800"}},
		{name: "comment", token: chromalib.CommentSingle, want: hjkl.TokenStyle{Foreground: "#888888", Italic: true}},
		{name: "operator", token: chromalib.OperatorWord, want: hjkl.TokenStyle{Foreground: "#00ffff"}},
		{name: "function", token: chromalib.NameFunction, want: hjkl.TokenStyle{Foreground: "#0000ff"}},
		{name: "constant", token: chromalib.NameConstant, want: hjkl.TokenStyle{Foreground: "#ff7700"}},
		{name: "punctuation", token: chromalib.Punctuation, want: hjkl.TokenStyle{Foreground: "#aaaaaa"}},
		{name: "plain name", token: chromalib.Name, want: hjkl.TokenStyle{}},
		{name: "error", token: chromalib.Error, want: hjkl.TokenStyle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styleFunc(tt.token))
		})
	}
}
