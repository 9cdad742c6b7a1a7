package multiset

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

// partitionKey identifies a memoized at-most-maxParts partition count.
type partitionKey struct {
	total    int
	maxParts int
}

// Partitions returns p(k), the number of integer partitions of k: the ways of
// writing k as an order-insensitive sum of positive integers. p(0) is 1 (the
// empty partition). Partitions(4) is 5: 4, 3+1, 2+2, 2+1+1, 1+1+1+1.
//
// Returns a DomainError if k is negative.
func (c *Calculator) Partitions(k int) (*big.Int, error) {
	return c.PartitionsMax(k, k)
}

// PartitionsMax returns the number of partitions of k into at most maxParts
// parts, computed from the standard recurrence on exact part counts:
//
//	p(k, m) = p(k-1, m-1) + p(k-m, m)
//
// (a partition of k into exactly m parts either contains a part equal to 1,
// or has every part lowered by 1). Base cases: p(0, m) = 1 for all m >= 0,
// and p(k, m) = 0 for k < 0 or for m <= 0 with k > 0.
//
// Results are memoized in a concurrency-safe read-through cache with
// at-most-once compute per key; the cache is semantically invisible since
// inputs fully determine outputs.
//
// Returns a DomainError if k or maxParts is negative.
func (c *Calculator) PartitionsMax(k, maxParts int) (*big.Int, error) {
	if k < 0 || maxParts < 0 {
		return nil, apperrors.NewDomainError("partitions", "requires non-negative integers, got k=%d maxParts=%d", k, maxParts)
	}

	key := partitionKey{total: k, maxParts: min(maxParts, k)}

	c.partMu.RLock()
	if cached, ok := c.partCache[key]; ok {
		result := new(big.Int).Set(cached)
		c.partMu.RUnlock()
		return result, nil
	}
	c.partMu.RUnlock()

	v, _, _ := c.partGroup.Do(fmt.Sprintf("%d/%d", key.total, key.maxParts), func() (any, error) {
		c.partMu.RLock()
		cached, ok := c.partCache[key]
		c.partMu.RUnlock()
		if ok {
			return cached, nil
		}

		exact := partitionTable(k, key.maxParts)
		total := new(big.Int)
		for j := 0; j <= key.maxParts; j++ {
			total.Add(total, exact[k][j])
		}

		c.partMu.Lock()
		c.partCache[key] = total
		c.partMu.Unlock()
		return total, nil
	})

	return new(big.Int).Set(v.(*big.Int)), nil
}

// PartitionsExactly returns the number of partitions of k into exactly parts
// positive parts. PartitionsExactly(0, 0) is 1 (the empty partition);
// PartitionsExactly(k, 0) is 0 for k > 0.
//
// Returns a DomainError if k or parts is negative.
func (c *Calculator) PartitionsExactly(k, parts int) (*big.Int, error) {
	if k < 0 || parts < 0 {
		return nil, apperrors.NewDomainError("partitions", "requires non-negative integers, got k=%d parts=%d", k, parts)
	}
	if parts > k {
		return new(big.Int), nil
	}
	exact := partitionTable(k, parts)
	return new(big.Int).Set(exact[k][parts]), nil
}

// partitionTable builds the exact-part-count table e[i][j] = partitions of i
// into exactly j parts, for i <= k and j <= m, via
// e[i][j] = e[i-1][j-1] + e[i-j][j] with e[0][0] = 1.
func partitionTable(k, m int) [][]*big.Int {
	exact := make([][]*big.Int, k+1)
	for i := range exact {
		exact[i] = make([]*big.Int, m+1)
		for j := range exact[i] {
			exact[i][j] = new(big.Int)
		}
	}
	exact[0][0].SetInt64(1)

	for i := 1; i <= k; i++ {
		for j := 1; j <= min(i, m); j++ {
			exact[i][j].Add(exact[i-1][j-1], exact[i-j][j])
		}
	}
	return exact
}
