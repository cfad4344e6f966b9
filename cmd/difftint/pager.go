package main

import (
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// pagerGuardEnv is set in the pager's environment. If difftint is itself
// installed as $PAGER, the child invocation sees the variable and refuses to
// page, which stops the fork loop.
const pagerGuardEnv = "DIFFTINT_IGNORE_PAGER"

// findPager picks the pager to use: $PAGER if set, then less, then moar.
// It returns false when no pager is available or when paging is suppressed
// by the fork-loop guard.
func findPager() (string, bool) {
	if os.Getenv(pagerGuardEnv) != "" {
		return "", false
	}
	candidates := []string{os.Getenv("PAGER"), "less", "moar"}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if _, err := exec.LookPath(name); err == nil {
			return name, true
		}
	}
	return "", false
}

// runPager starts the named pager and feeds it highlighted output. The
// highlight function runs concurrently with the pager so the user sees the
// first screen before the whole diff is processed.
func runPager(name string, highlight func(w io.Writer) error) error {
	cmd := exec.Command(name)

	env := append(os.Environ(), pagerGuardEnv+"=1")
	if os.Getenv("LESS") == "" {
		env = append(env, "LESS=FRX")
	}
	if os.Getenv("LV") == "" {
		env = append(env, "LV=-c")
	}
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		if err := highlight(stdin); err != nil && !isBrokenPipe(err) {
			return err
		}
		return nil
	})
	g.Go(cmd.Wait)
	return g.Wait()
}
