package mock

import (
	"io"

	"github.com/fwojciec/difftint"
)

// Compile-time interface verification.
var _ difftint.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of difftint.Highlighter.
type Highlighter struct {
	HighlightFn func(r io.Reader, w io.Writer) error
}

func (h *Highlighter) Highlight(r io.Reader, w io.Writer) error {
	return h.HighlightFn(r, w)
}
