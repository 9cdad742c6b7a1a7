package prob

import (
	"math/big"
	"testing"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

func drainExact(t *testing.T, est *Estimator, n, w int) []ExactRow {
	t.Helper()
	table, err := est.ExactTable(n, w)
	if err != nil {
		t.Fatalf("ExactTable(%d, %d) returned error: %v", n, w, err)
	}
	var rows []ExactRow
	for {
		row, ok := table.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	if err := table.Err(); err != nil {
		t.Fatalf("ExactTable(%d, %d) streaming error: %v", n, w, err)
	}
	return rows
}

func TestExactTableTopFiveOverTwoWorkers(t *testing.T) {
	t.Parallel()
	est := New()

	rows := drainExact(t, est, 5, 2)
	want := []ExactRow{
		{Count: 3, Prob: 1.0},
		{Count: 4, Prob: 0.375},
		{Count: 5, Prob: 0.0625},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i].Count != want[i].Count {
			t.Errorf("row %d count = %d, want %d", i, rows[i].Count, want[i].Count)
		}
		if !almostEqual(rows[i].Prob, want[i].Prob, 1e-12) {
			t.Errorf("row %d prob = %v, want %v", i, rows[i].Prob, want[i].Prob)
		}
	}
}

func TestExactTableFirstRowIsCertain(t *testing.T) {
	t.Parallel()
	est := New()

	// The pigeonhole minimum share is always reached, so the first row
	// carries probability 1.
	for _, tc := range []struct{ n, w int }{{5, 2}, {12, 3}, {20, 4}, {7, 7}} {
		rows := drainExact(t, est, tc.n, tc.w)
		if len(rows) == 0 {
			t.Fatalf("ExactTable(%d, %d) yielded no rows", tc.n, tc.w)
		}
		minShare := (tc.n + tc.w - 1) / tc.w
		if rows[0].Count != minShare {
			t.Errorf("ExactTable(%d, %d) first count = %d, want %d", tc.n, tc.w, rows[0].Count, minShare)
		}
		if rows[0].Prob != 1.0 {
			t.Errorf("ExactTable(%d, %d) first prob = %v, want 1", tc.n, tc.w, rows[0].Prob)
		}
		if rows[len(rows)-1].Count != tc.n {
			t.Errorf("ExactTable(%d, %d) last count = %d, want %d", tc.n, tc.w, rows[len(rows)-1].Count, tc.n)
		}
	}
}

func TestExactTableReferenceScenarios(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive enumeration in short mode")
	}
	t.Parallel()
	est := New()

	tests := []struct {
		n, w, count int
		want        float64
	}{
		{40, 4, 20, 2.2897244280e-03},
		{40, 8, 10, 1.7789512134e-01},
		{80, 4, 35, 7.8544408865e-04},
	}
	for _, tt := range tests {
		rows := drainExact(t, est, tt.n, tt.w)
		var got float64
		found := false
		for _, row := range rows {
			if row.Count == tt.count {
				got = row.Prob
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("ExactTable(%d, %d) has no row for count %d", tt.n, tt.w, tt.count)
		}
		if !almostEqual(got, tt.want, 1e-10) {
			t.Errorf("ExactTable(%d, %d) prob at count %d = %.10e, want %.10e", tt.n, tt.w, tt.count, got, tt.want)
		}
	}
}

func TestWaysByLargestShareSumsToAllAssignments(t *testing.T) {
	t.Parallel()
	est := New()

	for _, tc := range []struct{ n, w int }{{5, 2}, {10, 3}, {15, 4}} {
		it, err := est.WaysByLargestShare(tc.n, tc.w)
		if err != nil {
			t.Fatalf("WaysByLargestShare(%d, %d) returned error: %v", tc.n, tc.w, err)
		}
		sum := new(big.Int)
		lastShare := -1
		for {
			group, ok := it.Next()
			if !ok {
				break
			}
			if group.Share <= lastShare {
				t.Errorf("shares not strictly ascending: %d after %d", group.Share, lastShare)
			}
			lastShare = group.Share
			sum.Add(sum, group.Ways)
		}
		if err := it.Err(); err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).Exp(big.NewInt(int64(tc.w)), big.NewInt(int64(tc.n)), nil)
		if sum.Cmp(want) != 0 {
			t.Errorf("ways for (%d, %d) sum to %s, want %s", tc.n, tc.w, sum, want)
		}
	}
}

func TestExactTableDomainErrors(t *testing.T) {
	t.Parallel()
	est := New()

	if _, err := est.ExactTable(5, 0); !apperrors.IsDomain(err) {
		t.Errorf("no workers: error = %v, want DomainError", err)
	}
	if _, err := est.ExactTable(-1, 2); !apperrors.IsDomain(err) {
		t.Errorf("negative total: error = %v, want DomainError", err)
	}
}
