// Package builder — per-set cost distributions.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultSetCost is the cost assigned to each set when no CostFn is configured.
const DefaultSetCost float64 = 1

// CostFn produces a set cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) float64

// DefaultCostFn always returns DefaultSetCost.
// Complexity: O(1). Never panics.
func DefaultCostFn(_ *rand.Rand) float64 {
	return DefaultSetCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
// Complexity: O(1).
func ConstantCostFn(value float64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntCostFn returns a CostFn sampling integers uniformly in [min, max].
// Integral costs keep the branch-and-bound bound rounding active.
// If rng is nil the lower end min is returned (deterministic fallback).
// Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformIntCostFn(min, max int) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
