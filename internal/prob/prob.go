package prob

import (
	"math/big"

	apperrors "github.com/agbru/msetcalc/internal/errors"
	"github.com/agbru/msetcalc/internal/multiset"
)

// Estimator computes miss probabilities on top of a multiset Calculator.
// Sharing one Estimator between computations reuses the engine's factorial
// and partition caches.
type Estimator struct {
	calc *multiset.Calculator
}

// New creates an Estimator with a fresh engine.
func New() *Estimator {
	return NewWith(multiset.New())
}

// NewWith creates an Estimator on top of an existing engine, sharing its
// caches with other consumers.
func NewWith(calc *multiset.Calculator) *Estimator {
	return &Estimator{calc: calc}
}

// Calculator exposes the underlying engine, letting callers reuse its caches
// for related counting work.
func (e *Estimator) Calculator() *multiset.Calculator { return e.calc }

// TopMissed returns the probability that the single top-ranked result among n
// candidates is absent from every worker's draw, when each of w independent
// workers returns a uniformly random k-subset of the candidates.
//
// One worker misses the top item with probability C(n-1, k) / C(n, k); the w
// draws are independent, so the joint probability is that ratio raised to the
// w-th power. The ratio is computed exactly with big.Rat before the final
// conversion to float64.
//
// Boundaries: k = 0 yields 1 (certainly missed), k = n yields 0 (the only
// possible draw is everything). Returns a DomainError if n <= 0, k < 0,
// k > n, or w < 1.
func (e *Estimator) TopMissed(n, k, w int) (float64, error) {
	switch {
	case n <= 0:
		return 0, apperrors.NewDomainError("top missed", "requires a positive candidate pool, got n=%d", n)
	case k < 0:
		return 0, apperrors.NewDomainError("top missed", "requires a non-negative draw size, got k=%d", k)
	case k > n:
		return 0, apperrors.NewDomainError("top missed", "cannot draw %d results from %d candidates", k, n)
	case w < 1:
		return 0, apperrors.NewDomainError("top missed", "requires at least one worker, got w=%d", w)
	}

	missing, err := e.calc.Binomial(n-1, k)
	if err != nil {
		return 0, err
	}
	all, err := e.calc.Binomial(n, k)
	if err != nil {
		return 0, err
	}

	exp := big.NewInt(int64(w))
	numerator := new(big.Int).Exp(missing, exp, nil)
	denominator := new(big.Int).Exp(all, exp, nil)
	p, _ := new(big.Rat).SetFrac(numerator, denominator).Float64()
	return p, nil
}

// Row is one entry of a cumulative probability table: the per-worker result
// count and the probability that every worker misses the top result.
type Row struct {
	K    int
	Prob float64
}

// Table lazily yields Rows for k = 1..kMax in increasing order. Each row is
// computed independently from (n, w, k); re-running CumulativeTable with the
// same inputs reproduces the same sequence.
type Table struct {
	est     *Estimator
	n, w    int
	kMax    int
	nextK   int
}

// CumulativeTable validates the inputs and returns a lazy table of
// (k, TopMissed(n, k, w)) pairs for k from 1 to kMax. This is the decision
// surface for choosing how many results each worker should return to keep
// the miss probability below an acceptable threshold.
//
// Returns a DomainError if the inputs are invalid, including kMax > n.
func (e *Estimator) CumulativeTable(n, w, kMax int) (*Table, error) {
	if kMax < 1 {
		return nil, apperrors.NewDomainError("cumulative table", "requires at least one row, got kMax=%d", kMax)
	}
	// Validate (n, w, kMax) once so that row computation cannot fail.
	if _, err := e.TopMissed(n, kMax, w); err != nil {
		return nil, err
	}
	return &Table{est: e, n: n, w: w, kMax: kMax, nextK: 1}, nil
}

// Next returns the next row and true, or the zero Row and false once the
// table is exhausted.
func (t *Table) Next() (Row, bool) {
	if t.nextK > t.kMax {
		return Row{}, false
	}
	k := t.nextK
	t.nextK++
	p, err := t.est.TopMissed(t.n, k, t.w)
	if err != nil {
		// Unreachable: CumulativeTable validated the widest inputs.
		return Row{}, false
	}
	return Row{K: k, Prob: p}, true
}

// Rows drains the table into a slice, for callers that want the whole
// decision surface at once.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, t.kMax-t.nextK+1)
	for {
		row, ok := t.Next()
		if !ok {
			return rows
		}
		rows = append(rows, row)
	}
}
