package multiset

import (
	"math/big"

	apperrors "github.com/agbru/msetcalc/internal/errors"
)

// Int64 converts an exact count to int64, for callers that need to compare a
// combinatorial count against a fixed-width budget.
//
// Returns an OverflowError instead of wrapping or truncating when the value
// does not fit.
func Int64(x *big.Int) (int64, error) {
	if !x.IsInt64() {
		return 0, apperrors.OverflowError{Op: "int64 conversion", Value: x.String()}
	}
	return x.Int64(), nil
}
