package multiset

import (
	"math/big"
	"sync"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

// Calculator computes exact multiset combinatorics. The zero value is not
// usable; construct instances with New.
//
// A Calculator memoizes factorial prefix products and partition counts.
// Both caches are guarded for concurrent use, so a single Calculator may be
// shared freely across goroutines.
type Calculator struct {
	mu   sync.RWMutex
	fact []*big.Int // fact[i] == i!

	partMu    sync.RWMutex
	partCache map[partitionKey]*big.Int
	partGroup singleflight.Group
}

// New creates a Calculator with an initialized factorial cache.
func New() *Calculator {
	return &Calculator{
		fact:      []*big.Int{big.NewInt(1)},
		partCache: make(map[partitionKey]*big.Int),
	}
}

// Factorial returns n! as a big integer, extending the internal cache of
// prefix products as needed. Factorial(0) is 1.
//
// Returns a DomainError if n is negative.
func (c *Calculator) Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, apperrors.NewDomainError("factorial", "requires a non-negative integer, got %d", n)
	}

	c.mu.RLock()
	if n < len(c.fact) {
		result := new(big.Int).Set(c.fact[n])
		c.mu.RUnlock()
		return result, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.fact); i <= n; i++ {
		c.fact = append(c.fact, new(big.Int).Mul(c.fact[i-1], big.NewInt(int64(i))))
	}
	return new(big.Int).Set(c.fact[n]), nil
}

// Binomial returns the binomial coefficient C(n, k) = n! / (k! (n-k)!).
//
// Out-of-range k (k < 0 or k > n) counts zero subsets and returns 0 rather
// than an error; this is the standard combinatorial convention and the policy
// used consistently throughout the engine. A negative n is a DomainError.
func (c *Calculator) Binomial(n, k int) (*big.Int, error) {
	if n < 0 {
		return nil, apperrors.NewDomainError("binomial", "requires a non-negative pool size, got n=%d", n)
	}
	if k < 0 || k > n {
		return new(big.Int), nil
	}
	return c.multinomial("binomial", n, []int{k, n - k})
}

// Multinomial returns n! / (k_1! · k_2! · ... · k_m!) for the given
// multiplicities. The multiplicities must be non-negative and sum to n.
//
// Returns a DomainError if parts is empty, contains a negative entry, or does
// not sum to n.
func (c *Calculator) Multinomial(n int, parts []int) (*big.Int, error) {
	if n < 0 {
		return nil, apperrors.NewDomainError("multinomial", "requires a non-negative total, got n=%d", n)
	}
	return c.multinomial("multinomial", n, parts)
}

// MultinomialOf returns the multinomial coefficient of the given
// multiplicities with the total derived as their sum. Given a multiplicity
// profile (a, b, c), this is the number of distinct ways to order a sequence
// containing a copies of one symbol, b of another, and c of a third.
func (c *Calculator) MultinomialOf(parts []int) (*big.Int, error) {
	total := 0
	for _, p := range parts {
		if p < 0 {
			return nil, apperrors.NewDomainError("multinomial", "requires non-negative multiplicities, got %d", p)
		}
		total += p
	}
	return c.multinomial("multinomial", total, parts)
}

// multinomial is the shared core of Binomial, Multinomial, and MultinomialOf.
// The op name is carried through so DomainErrors identify the caller's
// operation rather than the internal helper.
func (c *Calculator) multinomial(op string, n int, parts []int) (*big.Int, error) {
	if len(parts) == 0 {
		return nil, apperrors.NewDomainError(op, "requires at least one multiplicity")
	}

	sum := 0
	denominator := big.NewInt(1)
	for _, p := range parts {
		if p < 0 {
			return nil, apperrors.NewDomainError(op, "requires non-negative multiplicities, got %d", p)
		}
		sum += p
		f, err := c.Factorial(p)
		if err != nil {
			return nil, err
		}
		denominator.Mul(denominator, f)
	}
	if sum != n {
		return nil, apperrors.NewDomainError(op, "multiplicities sum to %d, want %d", sum, n)
	}

	numerator, err := c.Factorial(n)
	if err != nil {
		return nil, err
	}
	// The division is exact; Quo never truncates here.
	return numerator.Quo(numerator, denominator), nil
}

// Arrangements returns the number of distinct orderings of a multiset given
// as a multiplicity profile. The profile entries are grouped by value and the
// multinomial coefficient of the group sizes is returned. For example, the
// profile (5, 0) across two workers can be assigned in 2 distinct ways.
//
// Returns a DomainError if the profile is empty or contains a negative entry.
func (c *Calculator) Arrangements(profile []int) (*big.Int, error) {
	if len(profile) == 0 {
		return nil, apperrors.NewDomainError("arrangements", "requires at least one multiplicity")
	}

	freq := make(map[int]int, len(profile))
	for _, v := range profile {
		if v < 0 {
			return nil, apperrors.NewDomainError("arrangements", "requires non-negative multiplicities, got %d", v)
		}
		freq[v]++
	}

	counts := make([]int, 0, len(freq))
	for _, n := range freq {
		counts = append(counts, n)
	}
	return c.multinomial("arrangements", len(profile), counts)
}

// CountMultisets returns the number of distinct multisets of size k drawn
// from an alphabet of size n: C(n+k-1, k), the stars-and-bars count of
// combinations with repetition.
//
// Returns a DomainError if n or k is negative.
func (c *Calculator) CountMultisets(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 {
		return nil, apperrors.NewDomainError("count multisets", "requires non-negative alphabet and size, got n=%d k=%d", n, k)
	}
	if k == 0 {
		// One multiset: the empty one. Also covers the empty alphabet.
		return big.NewInt(1), nil
	}
	if n == 0 {
		return new(big.Int), nil
	}
	return c.Binomial(n+k-1, k)
}
