package mock

import "github.com/fwojciec/hjkl"

// Compile-time interface verification.
var _ hjkl.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of hjkl.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
