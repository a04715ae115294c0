// Package score computes investment yields and applies the
// qualification thresholds that decide whether a candidate listing is
// worth keeping.
package score

import "math"

// ComputeYields derives gross and net annual yield percentages.
// Both require a present rent and a positive present price; otherwise
// the result is nil. Net treats missing charges/tax as zero — the one
// place absence is coerced, so a listing that simply omits its charges
// is under-deducted rather than dropped. Results are rounded to two
// decimals, half away from zero.
func ComputeYields(price, rent, charges, tax *float64) (gross, net *float64) {
	if price == nil || rent == nil || *price <= 0 {
		return nil, nil
	}

	g := round2(*rent / *price * 100)
	n := round2((*rent - orZero(charges) - orZero(tax)) / *price * 100)
	return &g, &n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
