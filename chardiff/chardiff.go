// Package chardiff implements character-level alignment using znkr.io/diff.
package chardiff

import (
	"strings"

	"znkr.io/diff"

	"github.com/fwojciec/difftint"
)

// Compile-time interface verification.
var _ difftint.Aligner = (*Differ)(nil)

// Differ aligns two texts character by character.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Align computes an ordered, gap-free partition of old and new into common,
// old-only and new-only runs. Consecutive edits with the same operation are
// merged into a single run.
func (d *Differ) Align(old, new string) []difftint.Run {
	if old == "" && new == "" {
		return nil
	}
	if old == "" {
		return []difftint.Run{{Op: difftint.OpNewOnly, Text: new}}
	}
	if new == "" {
		return []difftint.Run{{Op: difftint.OpOldOnly, Text: old}}
	}
	if old == new {
		return []difftint.Run{{Op: difftint.OpCommon, Text: old}}
	}

	edits := diff.Edits([]rune(old), []rune(new))

	runs := make([]difftint.Run, 0, 8)
	var cur difftint.Op
	var text strings.Builder
	haveRun := false

	flush := func() {
		if haveRun {
			runs = append(runs, difftint.Run{Op: cur, Text: text.String()})
			text.Reset()
			haveRun = false
		}
	}

	for _, e := range edits {
		var op difftint.Op
		var r rune
		switch e.Op {
		case diff.Match:
			op, r = difftint.OpCommon, e.X
		case diff.Delete:
			op, r = difftint.OpOldOnly, e.X
		case diff.Insert:
			op, r = difftint.OpNewOnly, e.Y
		}
		if haveRun && op != cur {
			flush()
		}
		cur = op
		text.WriteRune(r)
		haveRun = true
	}
	flush()

	return runs
}
