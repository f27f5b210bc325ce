package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from the configured RNG (possibly nil).
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// IntWeightFn samples an integer weight uniformly in [lo, hi], so that
// sums stay exact. With a nil RNG it returns lo. Panics unless 0 ≤ lo ≤ hi.
func IntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
