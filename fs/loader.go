package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Loader = (*Loader)(nil)

// sniffLen is how much of the content is checked for NUL bytes.
const sniffLen = 8000

// Loader reads documents from files or stdin.
type Loader struct {
	stdin    io.Reader
	detector hjkl.LanguageDetector
}

// NewLoader creates a Loader reading "-" from stdin. The detector may be nil,
// in which case documents carry no language.
func NewLoader(stdin io.Reader, detector hjkl.LanguageDetector) *Loader {
	return &Loader{stdin: stdin, detector: detector}
}

// Load reads the document at path. An empty path or "-" reads stdin.
func (l *Loader) Load(ctx context.Context, path string) (*hjkl.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	var err error
	name := path
	if path == "" || path == "-" {
		name = "-"
		data, err = io.ReadAll(l.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if bytes.IndexByte(data[:min(len(data), sniffLen)], 0) >= 0 {
		return nil, fmt.Errorf("%s: %w", name, hjkl.ErrBinary)
	}

	doc := &hjkl.Document{
		Name:     name,
		Content:  strings.ReplaceAll(string(data), "\r\n", "\n"),
		Markdown: isMarkdown(name),
	}
	if l.detector != nil && !doc.Markdown {
		doc.Language = l.detector.DetectFromPath(name)
		if doc.Language == "" {
			doc.Language = l.detector.DetectFromContent(doc.Content)
		}
	}
	return doc, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}
