// Package refiner renders replacement blocks with character-level
// highlighting of the spans that changed.
package refiner

import (
	"strings"

	"github.com/fwojciec/difftint"
	"github.com/fwojciec/difftint/termstyle"
)

// newlineMarker visibly flags a changed line terminator. A highlighted
// terminator is invisible on its own, so the marker is rendered in reverse
// video, followed by an ordinary terminator that keeps the line count
// intact.
const newlineMarker = "⏎"

// Compile-time interface verification.
var _ difftint.Refiner = (*Refiner)(nil)

// Refiner aligns the old and new text of a replacement block and decorates
// both sides.
type Refiner struct {
	aligner difftint.Aligner
	styles  difftint.Styles
}

// New creates a Refiner that obtains alignments from aligner and styles from
// theme.
func New(aligner difftint.Aligner, theme difftint.Theme) *Refiner {
	return &Refiner{aligner: aligner, styles: theme.Styles()}
}

// Refine returns the decorated old and new sides of a replacement block.
// When either side is empty there is nothing to refine against: a pure
// insertion or deletion is decorated with its plain role style and no
// reverse emphasis. Alignment is otherwise unconditional, with no bound on
// block size or dissimilarity.
func (r *Refiner) Refine(oldText, newText string) (string, string) {
	if oldText == "" || newText == "" {
		return r.plain(oldText, r.styles.Removed), r.plain(newText, r.styles.Added)
	}

	oldSide := termstyle.NewBuilder(r.styles.Removed)
	newSide := termstyle.NewBuilder(r.styles.Added)

	for _, run := range r.aligner.Align(oldText, newText) {
		switch run.Op {
		case difftint.OpCommon:
			oldSide.Append(run.Text, false)
			newSide.Append(run.Text, false)
		case difftint.OpOldOnly:
			appendChanged(oldSide, run.Text)
		case difftint.OpNewOnly:
			appendChanged(newSide, run.Text)
		}
	}

	return oldSide.String(), newSide.String()
}

// appendChanged appends a changed run under reverse emphasis. Each
// terminator inside the run renders as the visible marker in reverse,
// followed by a non-reversed terminator.
func appendChanged(b *termstyle.Builder, text string) {
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			b.Append(text, true)
			return
		}
		b.Append(text[:i], true)
		b.Append(newlineMarker, true)
		b.Append("\n", false)
		text = text[i+1:]
	}
}

func (r *Refiner) plain(text string, style difftint.Style) string {
	b := termstyle.NewBuilder(style)
	b.Append(text, false)
	return b.String()
}
