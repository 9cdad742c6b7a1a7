package multiset

import (
	apperrors "github.com/agbru/msetcalc/internal/errors"
)

// Enumerator lazily yields every multiplicity profile with a fixed slot count
// and sum: the non-ascending sequences of non-negative integers of length
// `parts` summing to `total`. Profiles are produced in ascending
// lexicographic order, starting from the most balanced profile and ending at
// (total, 0, ..., 0), so repeated enumerations with identical inputs always
// yield the same sequence.
//
// An Enumerator is single-use; obtain a fresh one from Calculator.Profiles to
// restart the sequence. It is not safe for concurrent use.
type Enumerator struct {
	total   int
	parts   int
	seq     []int
	started bool
	done    bool
}

// Profiles returns an Enumerator over all multiplicity profiles of length
// `parts` summing to `total`. The number of profiles equals
// PartitionsMax(total, parts).
//
// Degenerate slot counts follow the engine's fixed conventions: parts == 0
// yields a single empty profile, and parts == 1 yields only (total).
//
// Returns a DomainError if total or parts is negative.
func (c *Calculator) Profiles(total, parts int) (*Enumerator, error) {
	if total < 0 || parts < 0 {
		return nil, apperrors.NewDomainError("profiles", "requires non-negative integers, got total=%d parts=%d", total, parts)
	}
	return &Enumerator{total: total, parts: parts}, nil
}

// Next returns the next profile and true, or nil and false once the sequence
// is exhausted. The returned slice is freshly allocated on every call; the
// caller owns it.
func (e *Enumerator) Next() ([]int, bool) {
	if e.done {
		return nil, false
	}
	if !e.started {
		e.started = true
		if e.parts == 0 {
			e.done = true
			return []int{}, true
		}
		e.seq = balancedProfile(e.total, e.parts)
		return cloneProfile(e.seq), true
	}

	// The final profile (total, 0, ..., 0) has nothing left to move leftward.
	if e.parts < 2 || e.seq[1] == 0 {
		e.done = true
		return nil, false
	}

	// Advance to the lexicographic successor: take a unit from the rightmost
	// positive slot, add it at the rightmost slot that stays non-ascending,
	// then re-balance everything to its right into the minimal tail.
	i := e.parts - 1
	for e.seq[i] == 0 {
		i--
	}
	e.seq[i]--

	j := i - 1
	for j > 0 && e.seq[j] >= e.seq[j-1] {
		j--
	}
	e.seq[j]++

	rest := 0
	for k := j + 1; k < e.parts; k++ {
		rest += e.seq[k]
	}
	fillBalanced(e.seq[j+1:], rest)

	return cloneProfile(e.seq), true
}

// balancedProfile returns the lexicographically smallest non-ascending
// profile: total spread as evenly as possible across the slots.
func balancedProfile(total, parts int) []int {
	seq := make([]int, parts)
	fillBalanced(seq, total)
	return seq
}

// fillBalanced writes sum into the slots as evenly as possible, larger
// entries first, keeping the slice non-ascending.
func fillBalanced(slots []int, sum int) {
	if len(slots) == 0 {
		return
	}
	quot, rem := sum/len(slots), sum%len(slots)
	for i := range slots {
		slots[i] = quot
		if i < rem {
			slots[i]++
		}
	}
}

func cloneProfile(seq []int) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	return out
}
