package prob

import (
	"math/big"

	apperrors "github.com/agbru/msetcalc/internal/errors"
	"github.com/agbru/msetcalc/internal/multiset"
)

// ShareWays pairs a largest-share value with the number of ways to distribute
// the top results so that the busiest worker holds exactly that many of them.
type ShareWays struct {
	// Share is the number of top results held by the busiest worker.
	Share int
	// Ways counts the assignments of the n top results to the w workers
	// whose largest per-worker share equals Share.
	Ways *big.Int
}

// ShareIter streams ShareWays groups in ascending Share order. It follows the
// bufio.Scanner idiom: iterate with Next until it returns false, then check
// Err.
type ShareIter struct {
	calc    *multiset.Calculator
	enum    *multiset.Enumerator
	workers int
	pending []int
	err     error
}

// WaysByLargestShare groups every distribution of n top results over w
// workers by the largest per-worker share. For each profile of shares the
// number of contributing assignments is the multinomial coefficient of the
// profile (which of the n results lands where) times the number of distinct
// orderings of the profile across workers. Summed over all shares the ways
// total w^n.
//
// Groups arrive in ascending share order, from ceil(n/w) (pigeonhole minimum)
// up to n. Returns a DomainError if n < 0 or w < 1.
func (e *Estimator) WaysByLargestShare(n, w int) (*ShareIter, error) {
	if w < 1 {
		return nil, apperrors.NewDomainError("ways by largest share", "requires at least one worker, got w=%d", w)
	}
	enum, err := e.calc.Profiles(n, w)
	if err != nil {
		return nil, err
	}
	it := &ShareIter{calc: e.calc, enum: enum, workers: w}
	if first, ok := enum.Next(); ok {
		it.pending = first
	}
	return it, nil
}

// Next returns the next group and true, or the zero ShareWays and false when
// the groups are exhausted or an internal error occurred.
func (it *ShareIter) Next() (ShareWays, bool) {
	if it.err != nil || it.pending == nil {
		return ShareWays{}, false
	}

	share := it.pending[0]
	ways := new(big.Int)
	for it.pending != nil && it.pending[0] == share {
		weight, err := it.profileWeight(it.pending)
		if err != nil {
			it.err = err
			return ShareWays{}, false
		}
		ways.Add(ways, weight)

		next, ok := it.enum.Next()
		if !ok {
			it.pending = nil
			break
		}
		it.pending = next
	}
	return ShareWays{Share: share, Ways: ways}, true
}

// Err returns the first error encountered while streaming, if any.
func (it *ShareIter) Err() error { return it.err }

// profileWeight returns the number of assignments of results to workers whose
// sorted share profile equals the given one.
func (it *ShareIter) profileWeight(profile []int) (*big.Int, error) {
	distributions, err := it.calc.MultinomialOf(profile)
	if err != nil {
		return nil, err
	}
	orderings, err := it.calc.Arrangements(profile)
	if err != nil {
		return nil, err
	}
	return distributions.Mul(distributions, orderings), nil
}

// ExactRow is one entry of the exact-model table: the probability that at
// least one worker holds Count or more of the top results, i.e. that a query
// returning Count-1 results per worker misses part of the top set.
type ExactRow struct {
	Count int
	Prob  float64
}

// ExactTable streams ExactRows in ascending Count order. Like ShareIter, it
// terminates on the first internal error, retrievable via Err.
type ExactTable struct {
	shares    *ShareIter
	remaining *big.Int // assignments with largest share >= the next count
	total     *big.Int // w^n
}

// ExactTable returns the exact cumulative miss distribution for n top
// results over w workers. Row Count carries P(largest share >= Count),
// starting at 1 for the pigeonhole minimum ceil(n/w) and decreasing to
// w/w^n for Count = n (all top results on a single worker).
//
// The computation enumerates PartitionsMax(n, w) share profiles; callers on a
// budget should bound that count first. A threshold cut (stop once Count
// reaches a limit) is the caller's choice of when to stop reading rows.
//
// Returns a DomainError if n < 0 or w < 1.
func (e *Estimator) ExactTable(n, w int) (*ExactTable, error) {
	shares, err := e.WaysByLargestShare(n, w)
	if err != nil {
		return nil, err
	}
	total := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(n)), nil)
	return &ExactTable{
		shares:    shares,
		remaining: new(big.Int).Set(total),
		total:     total,
	}, nil
}

// Next returns the next row and true, or the zero ExactRow and false once the
// distribution is exhausted.
func (t *ExactTable) Next() (ExactRow, bool) {
	group, ok := t.shares.Next()
	if !ok {
		return ExactRow{}, false
	}
	p, _ := new(big.Rat).SetFrac(t.remaining, t.total).Float64()
	t.remaining.Sub(t.remaining, group.Ways)
	return ExactRow{Count: group.Share, Prob: p}, true
}

// Err returns the first error encountered while streaming, if any.
func (t *ExactTable) Err() error { return t.shares.Err() }
