package number

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percentage returns part as a percentage of total, rounded half away from zero
// to precision fractional digits. Negative precision is treated as zero.
//
//	Percentage(1, 3, 2) // 33.33, nil
func Percentage(part, total float64, precision int) (float64, error) {
	if !isFinite(part) || !isFinite(total) {
		return 0, fmt.Errorf("percentage of %v over %v: %w", part, total, ErrNotFinite)
	}
	if total == 0 {
		return 0, ErrZeroTotal
	}

	ratio := part / total * 100
	if !isFinite(ratio) {
		return 0, fmt.Errorf("percentage of %v over %v: %w", part, total, ErrNotFinite)
	}

	precision = min(max(precision, 0), maxPrecision)
	return decimal.NewFromFloat(ratio).Round(int32(precision)).InexactFloat64(), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
