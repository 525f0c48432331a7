// Package glamour renders markdown documents using the Glamour library.
package glamour

import (
	"fmt"
	"sync"

	glamourlib "github.com/charmbracelet/glamour"
	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Renderer = (*Renderer)(nil)

// Renderer renders markdown with a glamour style. Term renderers are cached
// per width because building one parses the whole style sheet.
type Renderer struct {
	style string

	mu    sync.Mutex
	cache map[int]*glamourlib.TermRenderer
}

// NewRenderer creates a Renderer for style "dark" or "light". Callers resolve
// automatic detection before the terminal is handed to the UI, since glamour's
// auto style queries the terminal on first render.
func NewRenderer(style string) (*Renderer, error) {
	switch style {
	case "dark", "light":
	default:
		return nil, fmt.Errorf("glamour: unknown style %q", style)
	}
	return &Renderer{style: style, cache: make(map[int]*glamourlib.TermRenderer)}, nil
}

// Render renders doc's markdown wrapped to width columns.
func (r *Renderer) Render(doc *hjkl.Document, width int) (string, error) {
	if doc == nil {
		return "", nil
	}
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(doc.Content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) termRenderer(width int) (*glamourlib.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.cache[width]; ok {
		return tr, nil
	}

	opts := []glamourlib.TermRendererOption{glamourlib.WithStandardStyle(r.style)}
	if width > 0 {
		opts = append(opts, glamourlib.WithWordWrap(width))
	}

	tr, err := glamourlib.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	r.cache[width] = tr
	return tr, nil
}
