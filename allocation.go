package committee

import "math"

// AllocationSplit is the fund's capital allocation: total assets under
// management plus the percentage nominally assigned to each sub-fund.
// The percentages are intended to sum to 100 but any non-negative sum is
// tolerated; all computations go through the normalized Weights.
type AllocationSplit struct {
	AUM     Money
	Core    Percent
	Balance Percent
	Dynamic Percent
}

// Percentage returns the raw allocation percentage of the given fund.
func (a AllocationSplit) Percentage(f Fund) Percent {
	switch f {
	case Core:
		return a.Core
	case Balance:
		return a.Balance
	case Dynamic:
		return a.Dynamic
	}
	return 0
}

// Weights returns the normalized weight per fund: each percentage divided by
// the sum of the three. A zero sum yields all-zero weights, not a division
// error. For any positive sum the weights add up to 1.
func (a AllocationSplit) Weights() map[Fund]float64 {
	sum := float64(a.Core + a.Balance + a.Dynamic)
	weights := make(map[Fund]float64, 3)
	for _, f := range AllFunds() {
		if sum == 0 {
			weights[f] = 0
			continue
		}
		weights[f] = float64(a.Percentage(f)) / sum
	}
	return weights
}

// Drift returns how far the allocation percentages stray from 100.
// A non-zero drift is a warning for the operator, never an error: the
// aggregator normalizes regardless. AUM is never rescaled by normalization.
func (a AllocationSplit) Drift() Percent {
	return Percent(float64(a.Core+a.Balance+a.Dynamic) - 100)
}

// Balanced reports whether the percentages sum to 100 within tolerance.
func (a AllocationSplit) Balanced() bool {
	return math.Abs(float64(a.Drift())) < 0.0001
}
