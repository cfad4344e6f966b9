package termstyle

import (
	"strings"

	"github.com/fwojciec/difftint"
)

// Builder accumulates one logical output line, possibly spanning several
// physical lines, from a sequence of (text, emphasis) appends.
//
// Invariant: the style's color and prefix are re-inserted immediately before
// the first character of every physical line, i.e. whenever the accumulated
// output is empty or ends with a line terminator. A reverse-video transition
// is emitted only when an append's emphasis differs from the previous one.
type Builder struct {
	style     difftint.Style
	out       strings.Builder
	reverse   bool
	appended  bool
	lineStart bool
}

// NewBuilder returns a Builder seeded with style.
func NewBuilder(style difftint.Style) *Builder {
	return &Builder{style: style, lineStart: true}
}

// Append adds text under the given emphasis. Multi-line text is written
// verbatim, with color and prefix re-inserted after each embedded
// terminator so that every physical line carries its styling.
func (b *Builder) Append(text string, reverse bool) {
	if text == "" {
		return
	}
	b.appended = true

	b.startPhysicalLine()
	if reverse != b.reverse {
		if reverse {
			b.out.WriteString(Reverse)
		} else {
			b.out.WriteString(NoReverse)
		}
		b.reverse = reverse
	}

	for len(text) > 0 {
		b.startPhysicalLine()
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			b.out.WriteString(text)
			break
		}
		b.out.WriteString(text[:i+1])
		b.lineStart = true
		text = text[i+1:]
	}
}

// startPhysicalLine re-inserts color and prefix when the accumulated output
// is empty or ends with a terminator.
func (b *Builder) startPhysicalLine() {
	if !b.lineStart {
		return
	}
	b.out.WriteString(b.style.Color)
	b.out.WriteString(b.style.Prefix)
	b.lineStart = false
}

// String finalizes the accumulated output. If nothing was ever appended it
// returns "" so that an empty source block produces no output line at all.
// Otherwise the result ends with a style reset (when the style has a color)
// followed by exactly one line terminator, regardless of how many
// terminators were embedded.
func (b *Builder) String() string {
	if !b.appended {
		return ""
	}
	s := strings.TrimSuffix(b.out.String(), "\n")
	if b.style.Color != "" {
		s += Reset
	}
	return s + "\n"
}
