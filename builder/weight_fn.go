package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn samples an integer uniformly in [min, max] and returns
// it as float64. With a nil RNG it yields min.
// Panics if min < 0 or max < min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
