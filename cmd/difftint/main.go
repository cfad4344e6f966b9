// Command difftint colors diff output and highlights which characters of a
// changed line actually changed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fwojciec/difftint"
	"github.com/fwojciec/difftint/chardiff"
	"github.com/fwojciec/difftint/refiner"
	"github.com/fwojciec/difftint/stream"
	"github.com/fwojciec/difftint/termstyle"
)

// version is set at build time via -ldflags.
var version = "dev"

const longHelp = `Colors diff output and highlights which characters of a changed line changed.

Git integration:
    git config --global pager.diff difftint
    git config --global pager.show difftint
    git config --global interactive.diffFilter difftint`

// App encapsulates the application logic for testing.
type App struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Highlighter difftint.Highlighter
}

// Run highlights Stdin onto Stdout.
func (a *App) Run() error {
	return a.Highlighter.Highlight(a.Stdin, a.Stdout)
}

// NewApp wires the default pipeline writing to w.
func NewApp(stdin io.Reader, w io.Writer) *App {
	theme := termstyle.Default()
	return &App{
		Stdin:       stdin,
		Stdout:      w,
		Highlighter: stream.New(theme, refiner.New(chardiff.NewDiffer(), theme)),
	}
}

func run(cmd *cobra.Command, _ []string) error {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return fmt.Errorf("checking stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		return errors.New("expected input from a pipe: diff ... | difftint")
	}

	if outStat, err := os.Stdout.Stat(); err == nil && outStat.Mode()&os.ModeCharDevice != 0 {
		if name, ok := findPager(); ok {
			return runPager(name, func(w io.Writer) error {
				return NewApp(os.Stdin, w).Run()
			})
		}
	}

	if err := NewApp(os.Stdin, os.Stdout).Run(); err != nil && !isBrokenPipe(err) {
		return err
	}
	return nil
}

// isBrokenPipe reports whether err means the other end of our output closed
// early, e.g. a pager that quit before reading everything. That is normal
// termination, not a failure.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "difftint",
		Short:        "Color diffs with character-level change highlighting",
		Long:         longHelp,
		Version:      version,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
