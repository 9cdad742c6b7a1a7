package prob

import (
	"math"
	"reflect"
	"testing"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestTopMissed(t *testing.T) {
	t.Parallel()
	est := New()

	tests := []struct {
		name    string
		n, k, w int
		want    float64
	}{
		{"single worker returning 4 of 20", 20, 4, 1, 0.8},
		{"four workers returning 4 of 20", 20, 4, 4, 0.4096},
		{"no results certainly miss", 20, 0, 3, 1.0},
		{"full draw certainly finds", 20, 20, 3, 0.0},
		{"half of two", 2, 1, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := est.TopMissed(tt.n, tt.k, tt.w)
			if err != nil {
				t.Fatalf("TopMissed(%d, %d, %d) returned error: %v", tt.n, tt.k, tt.w, err)
			}
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("TopMissed(%d, %d, %d) = %v, want %v", tt.n, tt.k, tt.w, got, tt.want)
			}
		})
	}
}

func TestTopMissedDomainErrors(t *testing.T) {
	t.Parallel()
	est := New()

	tests := []struct {
		name    string
		n, k, w int
	}{
		{"draw larger than pool", 5, 7, 1},
		{"negative draw", 5, -1, 1},
		{"empty pool", 0, 0, 1},
		{"negative pool", -5, 1, 1},
		{"no workers", 5, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := est.TopMissed(tt.n, tt.k, tt.w); !apperrors.IsDomain(err) {
				t.Errorf("TopMissed(%d, %d, %d) error = %v, want DomainError", tt.n, tt.k, tt.w, err)
			}
		})
	}
}

func TestCumulativeTable(t *testing.T) {
	t.Parallel()
	est := New()

	table, err := est.CumulativeTable(20, 1, 5)
	if err != nil {
		t.Fatalf("CumulativeTable returned error: %v", err)
	}
	rows := table.Rows()

	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if row.K != i+1 {
			t.Errorf("row %d has k=%d, want %d", i, row.K, i+1)
		}
		want := float64(20-row.K) / 20
		if !almostEqual(row.Prob, want, 1e-12) {
			t.Errorf("row k=%d prob = %v, want %v", row.K, row.Prob, want)
		}
	}

	// Probabilities decrease as workers return more results.
	for i := 1; i < len(rows); i++ {
		if rows[i].Prob >= rows[i-1].Prob {
			t.Errorf("prob did not decrease from k=%d to k=%d", rows[i-1].K, rows[i].K)
		}
	}
}

func TestCumulativeTableIsRestartable(t *testing.T) {
	t.Parallel()
	est := New()

	build := func() []Row {
		table, err := est.CumulativeTable(30, 4, 10)
		if err != nil {
			t.Fatalf("CumulativeTable returned error: %v", err)
		}
		return table.Rows()
	}

	if first, second := build(), build(); !reflect.DeepEqual(first, second) {
		t.Error("two tables with identical inputs differ")
	}
}

func TestCumulativeTableDomainErrors(t *testing.T) {
	t.Parallel()
	est := New()

	if _, err := est.CumulativeTable(5, 1, 7); !apperrors.IsDomain(err) {
		t.Errorf("kMax beyond pool: error = %v, want DomainError", err)
	}
	if _, err := est.CumulativeTable(5, 0, 3); !apperrors.IsDomain(err) {
		t.Errorf("no workers: error = %v, want DomainError", err)
	}
	if _, err := est.CumulativeTable(5, 1, 0); !apperrors.IsDomain(err) {
		t.Errorf("empty table: error = %v, want DomainError", err)
	}
}

func TestTableNextAfterExhaustion(t *testing.T) {
	t.Parallel()
	est := New()

	table, err := est.CumulativeTable(4, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	table.Rows()
	if _, ok := table.Next(); ok {
		t.Error("Next returned a row after exhaustion")
	}
}
