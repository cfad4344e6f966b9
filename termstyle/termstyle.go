// Package termstyle provides a Theme implementation and a styled line
// builder that emit raw SGR escape sequences via termenv.
package termstyle

import (
	"github.com/muesli/termenv"

	"github.com/fwojciec/difftint"
)

// Compile-time interface verification.
var _ difftint.Theme = (*Theme)(nil)

// SGR sequences used by the theme and the builder.
var (
	Reset     = termenv.CSI + termenv.ResetSeq + "m"
	Bold      = termenv.CSI + termenv.BoldSeq + "m"
	Reverse   = termenv.CSI + termenv.ReverseSeq + "m"
	NoReverse = termenv.CSI + "27m"

	red   = termenv.CSI + termenv.ANSIRed.Sequence(false) + "m"
	green = termenv.CSI + termenv.ANSIGreen.Sequence(false) + "m"
	cyan  = termenv.CSI + termenv.ANSICyan.Sequence(false) + "m"
)

// Theme implements difftint.Theme with plain 16-color SGR sequences.
type Theme struct {
	styles difftint.Styles
}

// Styles returns the role-to-style table for this theme.
func (t *Theme) Styles() difftint.Styles {
	return t.styles
}

// Default returns the standard palette: bold headers, cyan hunk headers,
// green added lines, red removed lines. Added and removed styles carry the
// +/- prefixes that are re-inserted on every physical line.
func Default() *Theme {
	return &Theme{
		styles: difftint.Styles{
			Header:     difftint.Style{Color: Bold},
			HunkHeader: difftint.Style{Color: cyan},
			Added:      difftint.Style{Color: green, Prefix: "+"},
			Removed:    difftint.Style{Color: red, Prefix: "-"},
			Plain:      difftint.Style{},
		},
	}
}
