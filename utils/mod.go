package utils

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptySequence reports Argmax called with no candidates.
var ErrEmptySequence = errors.New("argmax of empty sequence")

// Argmax returns the element with the greatest score, breaking ties in
// favor of the earliest occurrence. Each element is scored exactly once
// and compared against the best score seen so far.
func Argmax[T any, S constraints.Ordered](seq []T, score func(T) S) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	best := seq[0]
	bestScore := score(best)
	for _, item := range seq[1:] {
		if itemScore := score(item); itemScore > bestScore {
			best, bestScore = item, itemScore
		}
	}
	return best, nil
}
