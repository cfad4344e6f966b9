// Package stream implements the single-pass driver that feeds a diff stream
// through the classifier and writes decorated output.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/difftint"
	"github.com/fwojciec/difftint/classifier"
)

// Compile-time interface verification.
var _ difftint.Highlighter = (*Highlighter)(nil)

// Highlighter decorates diff streams. It is stateless across calls; each
// Highlight run owns a fresh classifier.
type Highlighter struct {
	theme   difftint.Theme
	refiner difftint.Refiner
}

// New creates a Highlighter using theme for styling and refiner for
// replacement blocks.
func New(theme difftint.Theme, refiner difftint.Refiner) *Highlighter {
	return &Highlighter{theme: theme, refiner: refiner}
}

// Highlight reads r line by line, classifies and decorates each line, and
// writes the result to w as soon as it is produced. Any pending replacement
// block is flushed at end of stream. The output has the same number of
// physical lines as the input, and a final input line without a terminator
// stays unterminated on output.
func (h *Highlighter) Highlight(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	c := classifier.New(h.refiner, h.theme)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		var out string
		if line != "" || !eof {
			terminated := strings.HasSuffix(line, "\n")
			out, err = c.Consume(strings.TrimSuffix(line, "\n"))
			if err != nil {
				return err
			}
			if eof && !terminated {
				// The input ended without a terminator, so whatever ends
				// the output (possibly the final flushed block) must not
				// gain one.
				out = strings.TrimSuffix(out+c.Flush(), "\n")
			}
		}
		if eof {
			out += c.Flush()
		}

		if _, werr := bw.WriteString(out); werr != nil {
			return fmt.Errorf("writing output: %w", werr)
		}
		if eof {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
