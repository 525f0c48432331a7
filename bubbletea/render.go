package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/hjkl"
	"github.com/mattn/go-runewidth"
)

// renderConfig holds all rendering parameters for renderDocument.
type renderConfig struct {
	doc         *hjkl.Document
	styles      hjkl.Styles
	renderer    *lipgloss.Renderer
	width       int
	tokenizer   hjkl.Tokenizer
	markdown    hjkl.Renderer
	lineNumbers bool
	tabWidth    int

	// Lines of the output to draw with the search match style.
	matches map[int]bool
}

// renderedDocument is the viewport content together with the plain text of
// each display line, which search runs against.
type renderedDocument struct {
	content string
	lines   []string
}

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// renderDocument converts a Document to styled viewport content.
// Markdown documents go through the markdown renderer when one is set;
// everything else is tokenized line by line. If the markdown renderer fails
// the document is rendered as plain text and the error is returned alongside.
func renderDocument(cfg renderConfig) (renderedDocument, error) {
	if cfg.doc == nil {
		return renderedDocument{}, nil
	}
	if cfg.doc.Markdown && cfg.markdown != nil {
		out, err := cfg.markdown.Render(cfg.doc, cfg.width)
		if err == nil {
			return renderMarkdown(out, cfg), nil
		}
		return renderSource(cfg), err
	}
	return renderSource(cfg), nil
}

func renderMarkdown(out string, cfg renderConfig) renderedDocument {
	matchStyle := styleFromColorPair(cfg.styles.SearchMatch, cfg.renderer)

	lines := splitLines(out)
	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = ansi.Strip(line)
		if cfg.matches[i] {
			lines[i] = matchStyle.Render(plain[i])
		}
	}
	return renderedDocument{content: strings.Join(lines, "\n"), lines: plain}
}

func renderSource(cfg renderConfig) renderedDocument {
	doc := cfg.doc
	source := splitLines(doc.Content)

	var tokens [][]hjkl.Token
	if cfg.tokenizer != nil && doc.Language != "" {
		tokens = cfg.tokenizer.TokenizeLines(doc.Language, doc.Content)
	}
	if len(tokens) != len(source) {
		tokens = nil
	}

	textStyle := styleFromColorPair(cfg.styles.Text, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	matchStyle := styleFromColorPair(cfg.styles.SearchMatch, cfg.renderer)

	gutterWidth := 0
	if cfg.lineNumbers {
		gutterWidth = max(digitWidth(len(source)), minGutterWidth)
	}

	var sb strings.Builder
	plain := make([]string, len(source))
	for i, line := range source {
		if i > 0 {
			sb.WriteString("\n")
		}
		if cfg.lineNumbers {
			sb.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d ", gutterWidth, i+1)))
		}

		text := ExpandTabs(line, 0, cfg.tabWidth)
		plain[i] = text

		switch {
		case cfg.matches[i]:
			sb.WriteString(matchStyle.Render(text))
		case tokens != nil:
			sb.WriteString(renderLineWithTokens(tokens[i], cfg))
		default:
			sb.WriteString(textStyle.Render(text))
		}

		if cfg.styles.Text.Background != "" {
			used := runewidth.StringWidth(text)
			if cfg.lineNumbers {
				used += gutterWidth + 1
			}
			if used < cfg.width {
				sb.WriteString(textStyle.Render(strings.Repeat(" ", cfg.width-used)))
			}
		}
	}
	return renderedDocument{content: sb.String(), lines: plain}
}

// renderLineWithTokens renders a line with syntax foregrounds over the text
// background. Tabs inside tokens are expanded relative to the line start.
func renderLineWithTokens(tokens []hjkl.Token, cfg renderConfig) string {
	colors := cfg.styles.Text
	var sb strings.Builder
	col := 0
	for _, tok := range tokens {
		style := newStyle(cfg.renderer)
		if colors.Background != "" {
			style = style.Background(lipgloss.Color(colors.Background))
		}
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		} else if colors.Foreground != "" {
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		if tok.Style.Italic {
			style = style.Italic(true)
		}

		text := ExpandTabs(tok.Text, col, cfg.tabWidth)
		col += runewidth.StringWidth(text)
		sb.WriteString(style.Render(text))
	}
	return sb.String()
}

// splitLines splits s on newlines, ignoring a single trailing newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp hjkl.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
