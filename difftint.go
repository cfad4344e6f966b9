// Package difftint provides domain types for colorizing unified diff
// streams with character-level change highlighting.
package difftint

import (
	"fmt"
	"io"
)

// Role is the semantic classification of a single diff line. It doubles as
// the state of the line classifier: exactly one Role is current at any time.
type Role int

// Classifier states / line roles.
const (
	RoleInitial    Role = iota // before any diff content has been seen
	RoleDiffHeader             // "diff ..." and the header lines that follow it
	RoleHunkHeader             // "@@ -x,y +x,y @@ ..."
	RoleHunk                   // unrecognized hunk-body lines, passed through
	RoleAdded                  // "+..."
	RoleRemoved                // "-..."
	RoleContext                // " ..."
)

// String returns the role name used in diagnostics.
func (r Role) String() string {
	switch r {
	case RoleInitial:
		return "initial"
	case RoleDiffHeader:
		return "diff_header"
	case RoleHunkHeader:
		return "diff_hunk_header"
	case RoleHunk:
		return "diff_hunk"
	case RoleAdded:
		return "diff_added"
	case RoleRemoved:
		return "diff_removed"
	case RoleContext:
		return "diff_context"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Op identifies which side of an alignment a run of text belongs to.
type Op int

// Alignment operations.
const (
	OpCommon  Op = iota // text present in both sides
	OpOldOnly           // text present only in the old side
	OpNewOnly           // text present only in the new side
)

// Run is a contiguous span of text produced by an Aligner. A full alignment
// is an ordered, gap-free sequence of runs: concatenating every non-NewOnly
// run reproduces the old text, and every non-OldOnly run the new text.
type Run struct {
	Op   Op
	Text string
}

// Aligner computes a character-level alignment between two texts.
type Aligner interface {
	Align(old, new string) []Run
}

// Refiner renders the old and new sides of a replacement block as decorated,
// print-ready strings with the characters that differ highlighted.
type Refiner interface {
	Refine(oldText, newText string) (refinedOld, refinedNew string)
}

// Highlighter decorates a diff stream, preserving its line count.
type Highlighter interface {
	Highlight(r io.Reader, w io.Writer) error
}

// Style decorates one class of output line. Color is a complete escape
// sequence (or empty for unstyled lines); Prefix is re-inserted at the start
// of every physical line, after Color.
type Style struct {
	Color  string
	Prefix string
}

// Styles maps line roles to their styles.
type Styles struct {
	Header     Style // diff/index/---/+++ header lines
	HunkHeader Style // @@ lines
	Added      Style // added lines and the new side of refined blocks
	Removed    Style // removed lines and the old side of refined blocks
	Plain      Style // everything else, unstyled passthrough
}

// For returns the style for a role. Roles without a dedicated style render
// unstyled.
func (s Styles) For(role Role) Style {
	switch role {
	case RoleDiffHeader:
		return s.Header
	case RoleHunkHeader:
		return s.HunkHeader
	case RoleAdded:
		return s.Added
	case RoleRemoved:
		return s.Removed
	default:
		return s.Plain
	}
}

// Theme provides styles for rendering diffs.
type Theme interface {
	Styles() Styles
}

// UnknownStateError reports that the classifier reached a state with no
// line-handling rule. It carries the offending state and line as a
// diagnostic aid for unsupported diff dialects; callers must treat it as
// fatal rather than guess a role.
type UnknownStateError struct {
	State Role
	Line  string
}

// Error implements the error interface.
func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("no handler for classifier state %s on line %q", e.State, e.Line)
}
