package mock

import "github.com/fwojciec/difftint"

// Compile-time interface verification.
var _ difftint.Aligner = (*Aligner)(nil)

// Aligner is a mock implementation of difftint.Aligner.
type Aligner struct {
	AlignFn func(old, new string) []difftint.Run
}

func (a *Aligner) Align(old, new string) []difftint.Run {
	return a.AlignFn(old, new)
}
