package mock

import "github.com/fwojciec/difftint"

// Compile-time interface verification.
var _ difftint.Refiner = (*Refiner)(nil)

// Refiner is a mock implementation of difftint.Refiner.
type Refiner struct {
	RefineFn func(oldText, newText string) (string, string)
}

func (r *Refiner) Refine(oldText, newText string) (string, string) {
	return r.RefineFn(oldText, newText)
}
