package braid

import (
	"errors"
	"fmt"
)

// ErrRange indicates a generator index magnitude outside [1, n-1].
var ErrRange = errors.New("braid: generator index out of range")

// Word is a braid word: signed generator indices applied left to right.
// The empty word is the identity.
type Word []int

// Validate checks every entry of w against the puncture count n:
// each |g| must lie in [1, n-1]. The first violation is reported with its
// position in the word.
func (w Word) Validate(n int) error {
	for j, g := range w {
		i := g
		if i < 0 {
			i = -i
		}
		if i < 1 || i > n-1 {
			return fmt.Errorf("%w: word[%d] = %d, want magnitude in [1, %d]", ErrRange, j, g, n-1)
		}
	}
	return nil
}

// Inverse returns the inverse word: entries reversed and sign-negated,
// so that w followed by w.Inverse() acts as the identity.
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for j, g := range w {
		inv[len(w)-1-j] = -g
	}
	return inv
}
