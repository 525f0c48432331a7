// Package hjkl provides vim-style key-sequence navigation.
//
// The core recognises one- and two-key sequences over a sliding window of the
// two most recent keystrokes and dispatches them to registered actions. It has
// no knowledge of any concrete UI: hosts translate their native key events into
// an Event and feed them to a Dispatcher.
package hjkl

import (
	"context"
	"errors"
)

// Errors reported while loading documents.
var (
	ErrBinary        = errors.New("binary content cannot be paged")
	ErrEmptyDocument = errors.New("document is empty")
)

// Symbol is a single case-sensitive key identifier, such as "g", "G" or "ctrl+d".
// The empty Symbol means "no key".
type Symbol string

// NoSymbol is the absent key.
const NoSymbol Symbol = ""

// KeyHistory holds the two most recently observed keys.
type KeyHistory struct {
	current  Symbol
	previous Symbol
}

// Put shifts the current key into previous and stores s as current.
func (h *KeyHistory) Put(s Symbol) {
	h.previous = h.current
	h.current = s
}

// Current returns the most recent key, or NoSymbol before the first Put.
func (h KeyHistory) Current() Symbol { return h.current }

// Previous returns the key observed before Current.
func (h KeyHistory) Previous() Symbol { return h.previous }

// Document is a piece of text opened in the pager.
type Document struct {
	Name     string // file name, or "-" for stdin
	Content  string
	Language string // chroma language name, empty when unknown
	Markdown bool   // rendered with a markdown renderer instead of the tokenizer
}

// Loader reads a Document from a path. An empty path or "-" means stdin.
type Loader interface {
	Load(ctx context.Context, path string) (*Document, error)
}

// Renderer turns a Document into terminal output for the given width.
type Renderer interface {
	Render(doc *Document, width int) (string, error)
}

// Viewer displays a Document and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, doc *Document) error
}

// Watcher reports changes to the file at path. The returned channel is closed
// when ctx is done.
type Watcher interface {
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	// Copy writes content to the system clipboard.
	Copy(content string) error
}
