package termstyle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/difftint"
	"github.com/fwojciec/difftint/termstyle"
)

var removed = difftint.Style{Color: "\x1b[31m", Prefix: "-"}

func TestBuilder_Append_SingleLine(t *testing.T) {
	t.Parallel()

	b := termstyle.NewBuilder(removed)
	b.Append("foo", false)

	assert.Equal(t, "\x1b[31m-foo\x1b[0m\n", b.String())
}

func TestBuilder_Append_MinimalEmphasisTransitions(t *testing.T) {
	t.Parallel()

	b := termstyle.NewBuilder(removed)
	b.Append("a", false)
	b.Append("b", true)
	b.Append("c", true)
	b.Append("d", false)

	// One reverse-on before "b", none between "b" and "c", one reverse-off
	// before "d".
	assert.Equal(t, "\x1b[31m-a\x1b[7mbc\x1b[27md\x1b[0m\n", b.String())
}

func TestBuilder_Append_RestylesEveryPhysicalLine(t *testing.T) {
	t.Parallel()

	t.Run("across appends", func(t *testing.T) {
		t.Parallel()

		b := termstyle.NewBuilder(removed)
		b.Append("a\n", false)
		b.Append("b", false)

		assert.Equal(t, "\x1b[31m-a\n\x1b[31m-b\x1b[0m\n", b.String())
	})

	t.Run("inside a multi-line append", func(t *testing.T) {
		t.Parallel()

		b := termstyle.NewBuilder(removed)
		b.Append("a\nb\nc", false)

		assert.Equal(t, "\x1b[31m-a\n\x1b[31m-b\n\x1b[31m-c\x1b[0m\n", b.String())
	})
}

func TestBuilder_String_ExactlyOneTerminator(t *testing.T) {
	t.Parallel()

	t.Run("appended terminator is not doubled", func(t *testing.T) {
		t.Parallel()

		b := termstyle.NewBuilder(removed)
		b.Append("a\n", false)

		assert.Equal(t, "\x1b[31m-a\x1b[0m\n", b.String())
	})

	t.Run("missing terminator is restored", func(t *testing.T) {
		t.Parallel()

		b := termstyle.NewBuilder(removed)
		b.Append("a", false)

		assert.Equal(t, "\x1b[31m-a\x1b[0m\n", b.String())
	})
}

func TestBuilder_String_EmptyWhenNothingAppended(t *testing.T) {
	t.Parallel()

	b := termstyle.NewBuilder(removed)
	b.Append("", false)

	// An empty source block must not emit a spurious colored newline.
	assert.Empty(t, b.String())
}

func TestBuilder_UnstyledOmitsReset(t *testing.T) {
	t.Parallel()

	b := termstyle.NewBuilder(difftint.Style{})
	b.Append(" context", false)

	assert.Equal(t, " context\n", b.String())
}
