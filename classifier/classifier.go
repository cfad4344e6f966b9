// Package classifier implements the streaming line state machine that
// assigns each diff line a role and accumulates replacement blocks.
package classifier

import (
	"strings"

	"github.com/fwojciec/difftint"
	"github.com/fwojciec/difftint/termstyle"
)

// Classifier consumes a diff stream one line at a time. It owns the pending
// replacement block: consecutive removed and added lines accumulate in two
// buffers which are refined and emitted before any other line, and again at
// end of stream.
type Classifier struct {
	state   difftint.Role
	refiner difftint.Refiner
	styles  difftint.Styles

	oldText strings.Builder
	newText strings.Builder
}

// New creates a Classifier in its initial state.
func New(refiner difftint.Refiner, theme difftint.Theme) *Classifier {
	return &Classifier{
		state:   difftint.RoleInitial,
		refiner: refiner,
		styles:  theme.Styles(),
	}
}

// Consume classifies line (terminator already stripped) and returns the
// decorated output this step produced. Added and removed lines are buffered
// and produce no immediate output; every other line first flushes the
// pending block, then emits the line styled for its role.
func (c *Classifier) Consume(line string) (string, error) {
	role, err := c.classify(line)
	if err != nil {
		return "", err
	}
	c.state = role

	switch role {
	case difftint.RoleAdded:
		c.newText.WriteString(line[1:])
		c.newText.WriteByte('\n')
		return "", nil
	case difftint.RoleRemoved:
		c.oldText.WriteString(line[1:])
		c.oldText.WriteByte('\n')
		return "", nil
	default:
		flushed := c.Flush()
		if line == "" {
			// An empty line still occupies a physical output line.
			return flushed + "\n", nil
		}
		b := termstyle.NewBuilder(c.styles.For(role))
		b.Append(line, false)
		return flushed + b.String(), nil
	}
}

// classify applies the transition table to line against the current state.
func (c *Classifier) classify(line string) (difftint.Role, error) {
	if strings.HasPrefix(line, "diff ") {
		return difftint.RoleDiffHeader, nil
	}

	switch c.state {
	case difftint.RoleInitial:
		return difftint.RoleInitial, nil

	case difftint.RoleDiffHeader:
		if strings.HasPrefix(line, "@@ ") {
			return difftint.RoleHunkHeader, nil
		}
		return difftint.RoleDiffHeader, nil

	case difftint.RoleHunkHeader, difftint.RoleHunk, difftint.RoleAdded,
		difftint.RoleRemoved, difftint.RoleContext:
		switch {
		case strings.HasPrefix(line, "@@ "):
			return difftint.RoleHunkHeader, nil
		case strings.HasPrefix(line, "+"):
			return difftint.RoleAdded, nil
		case strings.HasPrefix(line, "-"):
			return difftint.RoleRemoved, nil
		case strings.HasPrefix(line, " "):
			return difftint.RoleContext, nil
		default:
			// Hunk metadata and unknown hunk-body lines, e.g.
			// "\ No newline at end of file".
			return difftint.RoleHunk, nil
		}

	default:
		return 0, &difftint.UnknownStateError{State: c.state, Line: line}
	}
}

// Flush refines and returns the pending replacement block: all decorated
// old-side lines followed by all decorated new-side lines. The block is
// reset to empty; an empty block produces no output.
func (c *Classifier) Flush() string {
	if c.oldText.Len() == 0 && c.newText.Len() == 0 {
		return ""
	}
	refinedOld, refinedNew := c.refiner.Refine(c.oldText.String(), c.newText.String())
	c.oldText.Reset()
	c.newText.Reset()
	return refinedOld + refinedNew
}
