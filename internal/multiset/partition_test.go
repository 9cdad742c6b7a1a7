package multiset

import (
	"math/big"
	"sync"
	"testing"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

func TestPartitions(t *testing.T) {
	t.Parallel()
	calc := New()

	// p(0)..p(10): OEIS A000041.
	want := []int64{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
	for k, expected := range want {
		got, err := calc.Partitions(k)
		if err != nil {
			t.Fatalf("Partitions(%d) returned error: %v", k, err)
		}
		if got.Int64() != expected {
			t.Errorf("Partitions(%d) = %s, want %d", k, got, expected)
		}
	}

	if _, err := calc.Partitions(-1); !apperrors.IsDomain(err) {
		t.Errorf("Partitions(-1) error = %v, want DomainError", err)
	}
}

func TestPartitionsMax(t *testing.T) {
	t.Parallel()
	calc := New()

	tests := []struct {
		k, maxParts int
		want        int64
	}{
		{4, 1, 1},  // 4
		{4, 2, 3},  // 4, 3+1, 2+2
		{4, 3, 4},  // plus 2+1+1
		{4, 4, 5},  // plus 1+1+1+1
		{4, 9, 5},  // extra slots change nothing
		{0, 0, 1},  // the empty partition
		{0, 5, 1},
		{3, 0, 0},  // no parts cannot sum to a positive total
		{10, 3, 14},
	}
	for _, tt := range tests {
		got, err := calc.PartitionsMax(tt.k, tt.maxParts)
		if err != nil {
			t.Fatalf("PartitionsMax(%d, %d) returned error: %v", tt.k, tt.maxParts, err)
		}
		if got.Int64() != tt.want {
			t.Errorf("PartitionsMax(%d, %d) = %s, want %d", tt.k, tt.maxParts, got, tt.want)
		}
	}
}

func TestPartitionsExactlySumsToTotal(t *testing.T) {
	t.Parallel()
	calc := New()

	// The partitions of k split by exact part count must add up to p(k).
	for k := 1; k <= 30; k++ {
		sum := new(big.Int)
		for m := 1; m <= k; m++ {
			exact, err := calc.PartitionsExactly(k, m)
			if err != nil {
				t.Fatalf("PartitionsExactly(%d, %d) returned error: %v", k, m, err)
			}
			sum.Add(sum, exact)
		}
		total, err := calc.Partitions(k)
		if err != nil {
			t.Fatal(err)
		}
		if sum.Cmp(total) != 0 {
			t.Errorf("sum of exact part counts for k=%d is %s, want p(k)=%s", k, sum, total)
		}
	}
}

func TestPartitionsMaxMatchesRecurrence(t *testing.T) {
	t.Parallel()
	calc := New()

	// p(k, m) = p(k-1, m-1) + p(k-m, m) on the exact-part-count table.
	for k := 2; k <= 20; k++ {
		for m := 1; m <= k; m++ {
			lhs, _ := calc.PartitionsExactly(k, m)
			a, _ := calc.PartitionsExactly(k-1, m-1)
			var b *big.Int
			if k-m >= 0 {
				b, _ = calc.PartitionsExactly(k-m, m)
			} else {
				b = new(big.Int)
			}
			rhs := new(big.Int).Add(a, b)
			if lhs.Cmp(rhs) != 0 {
				t.Errorf("recurrence broken at k=%d m=%d: %s != %s", k, m, lhs, rhs)
			}
		}
	}
}

func TestPartitionsMaxConcurrentCallersAgree(t *testing.T) {
	t.Parallel()
	calc := New()

	// The memo cache is shared; hammer one key from many goroutines and
	// make sure every caller sees the same value.
	const goroutines = 16
	results := make([]*big.Int, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			v, err := calc.PartitionsMax(60, 8)
			if err != nil {
				t.Errorf("PartitionsMax(60, 8) returned error: %v", err)
				return
			}
			results[idx] = v
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[0] == nil || results[i] == nil {
			t.Fatal("missing result")
		}
		if results[0].Cmp(results[i]) != 0 {
			t.Errorf("goroutine %d saw %s, goroutine 0 saw %s", i, results[i], results[0])
		}
	}
}

func TestPartitionsMaxCachedResultIsACopy(t *testing.T) {
	t.Parallel()
	calc := New()

	first, err := calc.PartitionsMax(12, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Set(first)
	first.SetInt64(-7)

	second, err := calc.PartitionsMax(12, 5)
	if err != nil {
		t.Fatal(err)
	}
	if second.Cmp(want) != 0 {
		t.Errorf("PartitionsMax(12, 5) after caller mutation = %s, want %s", second, want)
	}
}
