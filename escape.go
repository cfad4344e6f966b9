package difftint

import "regexp"

var escapePattern = regexp.MustCompile("\x1b[^m]*m")

// StripEscapes removes every terminal escape sequence from s, leaving the
// plain text. Stripping a decorated output line reproduces the original
// input line, modulo the line-ending marker added inside refined blocks.
func StripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}
